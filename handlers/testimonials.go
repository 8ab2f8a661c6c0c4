package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dravedigitals/careerguard/server/models"
	"github.com/dravedigitals/careerguard/server/store"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TestimonialsHandler struct {
	DB *store.DB
}

// List returns approved testimonials newest-first; the public surface
// never sees unapproved entries.
func (h *TestimonialsHandler) List(w http.ResponseWriter, r *http.Request) {
	ts, err := h.DB.ApprovedTestimonials(r.Context())
	if err != nil {
		writeServerError(w, err)
		return
	}
	if ts == nil {
		ts = []models.Testimonial{}
	}
	writeJSON(w, http.StatusOK, ts)
}

// AdminList returns every testimonial, approved or not.
func (h *TestimonialsHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	ts, err := h.DB.AllTestimonials(r.Context())
	if err != nil {
		writeServerError(w, err)
		return
	}
	if ts == nil {
		ts = []models.Testimonial{}
	}
	writeJSON(w, http.StatusOK, ts)
}

// Create stores an admin-authored testimonial. Admin-created testimonials
// are approved automatically.
func (h *TestimonialsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var t models.Testimonial
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if t.Name == "" || t.Role == "" || t.Company == "" || t.Text == "" || t.Service == "" {
		writeMessage(w, http.StatusBadRequest, "Name, role, company, text and service are required")
		return
	}
	if t.Rating < 1 || t.Rating > 5 {
		writeMessage(w, http.StatusBadRequest, "Rating must be between 1 and 5")
		return
	}
	if t.Avatar == "" {
		t.Avatar = "👤"
	}
	t.ID = primitive.NilObjectID
	t.Approved = true
	t.CreatedAt = time.Now()
	if _, err := h.DB.InsertTestimonial(r.Context(), &t); err != nil {
		writeServerError(w, err)
		return
	}
	writeMessage(w, http.StatusCreated, "Testimonial created successfully")
}

// Approve partially updates the approved/featured flags; absent fields are
// left unchanged.
func (h *TestimonialsHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var req struct {
		Approved *bool `json:"approved"`
		Featured *bool `json:"featured"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.DB.SetTestimonialFlags(r.Context(), id, req.Approved, req.Featured); err != nil {
		writeServerError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Testimonial updated successfully")
}

func (h *TestimonialsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid id")
		return
	}
	if err := h.DB.DeleteTestimonial(r.Context(), id); err != nil {
		writeServerError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Testimonial deleted successfully")
}
