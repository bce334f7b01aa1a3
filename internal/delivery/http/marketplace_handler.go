package http

import (
	"encoding/json"
	"log"
	"net/http"

	"vowline/internal/entity"
	"vowline/internal/usecase"

	"github.com/go-chi/chi/v5"
)

// MarketplaceHandler serves the non-chat marketplace resources: ceremony
// events, notes, reviews, bills, schedules and notifications.
type MarketplaceHandler struct {
	eventUc        usecase.EventUsecase
	noteUc         usecase.NoteUsecase
	reviewUc       usecase.ReviewUsecase
	billUc         usecase.BillUsecase
	scheduleUc     usecase.ScheduleUsecase
	notificationUc usecase.NotificationUsecase
	subscriberUc   usecase.SubscriberUsecase
}

func NewMarketplaceHandler(
	eventUc usecase.EventUsecase,
	noteUc usecase.NoteUsecase,
	reviewUc usecase.ReviewUsecase,
	billUc usecase.BillUsecase,
	scheduleUc usecase.ScheduleUsecase,
	notificationUc usecase.NotificationUsecase,
	subscriberUc usecase.SubscriberUsecase,
) *MarketplaceHandler {
	return &MarketplaceHandler{
		eventUc:        eventUc,
		noteUc:         noteUc,
		reviewUc:       reviewUc,
		billUc:         billUc,
		scheduleUc:     scheduleUc,
		notificationUc: notificationUc,
		subscriberUc:   subscriberUc,
	}
}

// POST /api/events
func (h *MarketplaceHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var event entity.Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	event.UserId = claims.UserId

	eventId, err := h.eventUc.Create(r.Context(), event)
	if err != nil {
		log.Printf("Create event error: %v", err)
		respondError(w, statusFromError(err), "failed to create event")
		return
	}

	respond(w, http.StatusCreated, Response{Message: "success", Data: map[string]string{"eventId": eventId}})
}

// GET /api/events/{eventId}
func (h *MarketplaceHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := h.eventUc.Get(r.Context(), chi.URLParam(r, "eventId"))
	if err != nil {
		respondError(w, statusFromError(err), "event not found")
		return
	}
	respond(w, http.StatusOK, Response{Message: "success", Data: event})
}

// GET /api/events (own events; officiants see assigned ones)
func (h *MarketplaceHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var (
		events []entity.Event
		err    error
	)
	if claims.Role == entity.UserRoleOfficiant {
		events, err = h.eventUc.ListByOfficiant(r.Context(), claims.UserId)
	} else {
		events, err = h.eventUc.ListByUser(r.Context(), claims.UserId)
	}
	if err != nil {
		log.Printf("List events error: %v", err)
		respondError(w, statusFromError(err), "failed to list events")
		return
	}

	respond(w, http.StatusOK, Response{Message: "success", Data: events})
}

// PUT /api/events/{eventId}
func (h *MarketplaceHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var event entity.Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	event.Id = chi.URLParam(r, "eventId")

	if err := h.eventUc.Update(r.Context(), event, claims.UserId); err != nil {
		log.Printf("Update event error: %v", err)
		respondError(w, statusFromError(err), "failed to update event")
		return
	}

	respond(w, http.StatusOK, Response{Message: "success"})
}

// DELETE /api/events/{eventId}
func (h *MarketplaceHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.eventUc.Delete(r.Context(), chi.URLParam(r, "eventId"), claims.UserId); err != nil {
		log.Printf("Delete event error: %v", err)
		respondError(w, statusFromError(err), "failed to delete event")
		return
	}

	respond(w, http.StatusOK, Response{Message: "success"})
}

// POST /api/notes
func (h *MarketplaceHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	var note entity.Note
	if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	noteId, err := h.noteUc.Create(r.Context(), note)
	if err != nil {
		log.Printf("Create note error: %v", err)
		respondError(w, statusFromError(err), "failed to create note")
		return
	}

	respond(w, http.StatusCreated, Response{Message: "success", Data: map[string]string{"noteId": noteId}})
}

// GET /api/notes
func (h *MarketplaceHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	notes, err := h.noteUc.ListForUser(r.Context(), claims.UserId)
	if err != nil {
		log.Printf("List notes error: %v", err)
		respondError(w, statusFromError(err), "failed to list notes")
		return
	}

	respond(w, http.StatusOK, Response{Message: "success", Data: notes})
}

// PATCH /api/notes/{noteId}/read
func (h *MarketplaceHandler) MarkNoteRead(w http.ResponseWriter, r *http.Request) {
	if err := h.noteUc.MarkRead(r.Context(), chi.URLParam(r, "noteId")); err != nil {
		respondError(w, statusFromError(err), "failed to mark note read")
		return
	}
	respond(w, http.StatusOK, Response{Message: "success"})
}

// DELETE /api/notes/{noteId}
func (h *MarketplaceHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	if err := h.noteUc.Delete(r.Context(), chi.URLParam(r, "noteId")); err != nil {
		respondError(w, statusFromError(err), "failed to delete note")
		return
	}
	respond(w, http.StatusOK, Response{Message: "success"})
}

// POST /api/reviews
func (h *MarketplaceHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var review entity.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reviewId, err := h.reviewUc.Create(r.Context(), review)
	if err != nil {
		log.Printf("Create review error: %v", err)
		respondError(w, statusFromError(err), "failed to create review")
		return
	}

	respond(w, http.StatusCreated, Response{Message: "success", Data: map[string]string{"reviewId": reviewId}})
}

// GET /api/reviews/officiant/{officiantId}?includeHidden=true
func (h *MarketplaceHandler) ListOfficiantReviews(w http.ResponseWriter, r *http.Request) {
	includeHidden := r.URL.Query().Get("includeHidden") == "true"

	reviews, err := h.reviewUc.ListForOfficiant(r.Context(), chi.URLParam(r, "officiantId"), includeHidden)
	if err != nil {
		log.Printf("List reviews error: %v", err)
		respondError(w, statusFromError(err), "failed to list reviews")
		return
	}

	respond(w, http.StatusOK, Response{Message: "success", Data: reviews})
}

// PATCH /api/reviews/{reviewId}/visibility
func (h *MarketplaceHandler) SetReviewVisibility(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Visible bool `json:"visible"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.reviewUc.SetVisibility(r.Context(), chi.URLParam(r, "reviewId"), req.Visible); err != nil {
		respondError(w, statusFromError(err), "failed to update review visibility")
		return
	}

	respond(w, http.StatusOK, Response{Message: "success"})
}

// DELETE /api/reviews/{reviewId}
func (h *MarketplaceHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	if err := h.reviewUc.Delete(r.Context(), chi.URLParam(r, "reviewId")); err != nil {
		respondError(w, statusFromError(err), "failed to delete review")
		return
	}
	respond(w, http.StatusOK, Response{Message: "success"})
}

// POST /api/bills
func (h *MarketplaceHandler) CreateBill(w http.ResponseWriter, r *http.Request) {
	var bill entity.Bill
	if err := json.NewDecoder(r.Body).Decode(&bill); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	billId, err := h.billUc.Create(r.Context(), bill)
	if err != nil {
		log.Printf("Create bill error: %v", err)
		respondError(w, statusFromError(err), "failed to create bill")
		return
	}

	respond(w, http.StatusCreated, Response{Message: "success", Data: map[string]string{"billId": billId}})
}

// GET /api/bills
func (h *MarketplaceHandler) ListBills(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	bills, err := h.billUc.ListByUser(r.Context(), claims.UserId)
	if err != nil {
		log.Printf("List bills error: %v", err)
		respondError(w, statusFromError(err), "failed to list bills")
		return
	}

	respond(w, http.StatusOK, Response{Message: "success", Data: bills})
}

// POST /api/bills/{billId}/pay
func (h *MarketplaceHandler) PayBill(w http.ResponseWriter, r *http.Request) {
	bill, err := h.billUc.Pay(r.Context(), chi.URLParam(r, "billId"))
	if err != nil {
		log.Printf("Pay bill error: %v", err)
		respondError(w, statusFromError(err), "failed to pay bill")
		return
	}

	respond(w, http.StatusOK, Response{Message: "success", Data: bill})
}

// POST /api/schedules
func (h *MarketplaceHandler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	var schedule entity.Schedule
	if err := json.NewDecoder(r.Body).Decode(&schedule); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	scheduleId, err := h.scheduleUc.Create(r.Context(), schedule)
	if err != nil {
		log.Printf("Create schedule error: %v", err)
		respondError(w, statusFromError(err), "failed to create schedule")
		return
	}

	respond(w, http.StatusCreated, Response{Message: "success", Data: map[string]string{"scheduleId": scheduleId}})
}

// GET /api/schedules
func (h *MarketplaceHandler) ListSchedules(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var (
		schedules []entity.Schedule
		err       error
	)
	if claims.Role == entity.UserRoleOfficiant {
		schedules, err = h.scheduleUc.ListByOfficiant(r.Context(), claims.UserId)
	} else {
		schedules, err = h.scheduleUc.ListByUser(r.Context(), claims.UserId)
	}
	if err != nil {
		log.Printf("List schedules error: %v", err)
		respondError(w, statusFromError(err), "failed to list schedules")
		return
	}

	respond(w, http.StatusOK, Response{Message: "success", Data: schedules})
}

// PATCH /api/schedules/{scheduleId}
func (h *MarketplaceHandler) RespondSchedule(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	schedule, err := h.scheduleUc.Respond(r.Context(), chi.URLParam(r, "scheduleId"), req.Status)
	if err != nil {
		log.Printf("Respond schedule error: %v", err)
		respondError(w, statusFromError(err), "failed to respond to schedule")
		return
	}

	respond(w, http.StatusOK, Response{Message: "success", Data: schedule})
}

// DELETE /api/schedules/{scheduleId}
func (h *MarketplaceHandler) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	if err := h.scheduleUc.Delete(r.Context(), chi.URLParam(r, "scheduleId")); err != nil {
		respondError(w, statusFromError(err), "failed to delete schedule")
		return
	}
	respond(w, http.StatusOK, Response{Message: "success"})
}

// GET /api/notifications
func (h *MarketplaceHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	notifications, err := h.notificationUc.ListForUser(r.Context(), claims.UserId)
	if err != nil {
		log.Printf("List notifications error: %v", err)
		respondError(w, statusFromError(err), "failed to list notifications")
		return
	}

	respond(w, http.StatusOK, Response{Message: "success", Data: notifications})
}

// PATCH /api/notifications/{notificationId}/read
func (h *MarketplaceHandler) ToggleNotificationRead(w http.ResponseWriter, r *http.Request) {
	notification, err := h.notificationUc.ToggleRead(r.Context(), chi.URLParam(r, "notificationId"))
	if err != nil {
		respondError(w, statusFromError(err), "failed to update notification")
		return
	}
	respond(w, http.StatusOK, Response{Message: "success", Data: notification})
}

// POST /subscribe
//
// Newsletter signup from the public landing page, no account required.
func (h *MarketplaceHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	_, err := h.subscriberUc.Subscribe(r.Context(), req.Email)
	if err != nil {
		respondError(w, statusFromError(err), err.Error())
		return
	}

	respond(w, http.StatusCreated, Response{Message: "subscribed successfully"})
}

// GET /api/subscribers
func (h *MarketplaceHandler) ListSubscribers(w http.ResponseWriter, r *http.Request) {
	subscribers, err := h.subscriberUc.List(r.Context())
	if err != nil {
		log.Printf("List subscribers error: %v", err)
		respondError(w, statusFromError(err), "failed to list subscribers")
		return
	}

	respond(w, http.StatusOK, Response{Message: "success", Data: subscribers})
}

// GET /api/users/dashboard
func (h *MarketplaceHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	respond(w, http.StatusOK, Response{Message: "welcome to dashboard", Data: claims})
}
