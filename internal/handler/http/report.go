package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/rollcall-hq/rollcall-backend-go/internal/domain/report"
	"github.com/rollcall-hq/rollcall-backend-go/internal/domain/user"
	"github.com/rollcall-hq/rollcall-backend-go/internal/handler/http/response"
)

type ReportHandler struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Subjects serves the per-subject report for everyone the caller may see.
func (h *ReportHandler) Subjects(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.principal(w, r)
	if !ok {
		return
	}

	result, err := h.reportService.SubjectReport(r.Context(), principal, queryFromRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Rate serves the single weighted attendance rate over the caller's scope.
func (h *ReportHandler) Rate(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.principal(w, r)
	if !ok {
		return
	}

	result, err := h.reportService.ScalarReport(r.Context(), principal, queryFromRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// principal rebuilds the caller's identity from verified token claims.
func (h *ReportHandler) principal(w http.ResponseWriter, r *http.Request) (report.Principal, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return report.Principal{}, false
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		response.Unauthorized(w, "Invalid token claims")
		return report.Principal{}, false
	}
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		response.Unauthorized(w, "Invalid token claims")
		return report.Principal{}, false
	}
	group, _ := claims["group"].(string)

	return report.Principal{
		UserID: userID,
		Role:   user.Role(role),
		Group:  group,
	}, true
}

func queryFromRequest(r *http.Request) report.Query {
	q := r.URL.Query()
	return report.Query{
		Start:  q.Get("start"),
		End:    q.Get("end"),
		Search: q.Get("search"),
		Group:  q.Get("group"),
	}
}
