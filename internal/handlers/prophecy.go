package handlers

import "net/http"

// DailyProphecyResponse is the fixed daily-guidance payload.
type DailyProphecyResponse struct {
	Success  bool   `json:"success"`
	Prophecy string `json:"prophecy"`
}

// DailyProphecy handles POST /api/prophecy. The frontend pings it for a
// generic banner line; personalized text comes from GetConsultation.
func (h *Handler) DailyProphecy(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, DailyProphecyResponse{
		Success:  true,
		Prophecy: "Your daily cosmic guidance is revealed",
	})
}
