package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/ericmurielchan/chanmkt/internal/entity"
	"github.com/ericmurielchan/chanmkt/internal/service"
)

// Dashboard godoc
// @Summary      Role-shaped dashboard KPIs
// @Tags         reports
// @Produce      json
// @Success      200 {object} entity.DashboardStats
// @Security     BearerAuth
// @Router       /dashboard [get]
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.s.Dashboard(ctx)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, stats)
}

// Calendar godoc
// @Summary      Month calendar with deadlines and receivables
// @Description  RECEIVABLE items appear for Finance and Admin viewers only.
// @Tags         reports
// @Produce      json
// @Param        year query int true "Year"
// @Param        month query int true "Month, 1..12"
// @Success      200 {array} entity.CalendarDay
// @Failure      400 {object} ResponseError "Invalid request"
// @Security     BearerAuth
// @Router       /calendar [get]
func (h *Handler) Calendar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, entity.ErrIncorrectRequestBody, entity.ErrMsgBadRequest)
		return
	}

	monthNum, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, entity.ErrIncorrectRequestBody, entity.ErrMsgBadRequest)
		return
	}

	month := time.Month(monthNum)

	err = service.ValidateCalendarParams(year, month)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	days, err := h.s.Calendar(ctx, year, month)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, days)
}

type InsightsResponse struct {
	HTML string `json:"html"`
}

// Insights godoc
// @Summary      AI workflow recommendations
// @Description  Returns a short HTML list; degrades to a static fallback when the analysis service is unreachable.
// @Tags         reports
// @Produce      json
// @Success      200 {object} InsightsResponse
// @Security     BearerAuth
// @Router       /insights [get]
func (h *Handler) Insights(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	html, err := h.s.Insights(ctx)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, InsightsResponse{HTML: html})
}
