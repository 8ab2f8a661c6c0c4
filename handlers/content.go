package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/dravedigitals/careerguard/server/models"
	"github.com/dravedigitals/careerguard/server/store"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ContentHandler struct {
	DB *store.DB
}

// WebsiteContent assembles the public aggregate from concurrent sub-reads.
// Any sub-read failure fails the whole response; no partial aggregate.
func (h *ContentHandler) WebsiteContent(w http.ResponseWriter, r *http.Request) {
	var (
		content models.WebsiteContent
		errs    [5]error
		wg      sync.WaitGroup
	)
	wg.Add(5)
	go func() {
		defer wg.Done()
		content.Hero, errs[0] = h.DB.ActiveHero(r.Context())
	}()
	go func() {
		defer wg.Done()
		content.Services, errs[1] = h.DB.ListServices(r.Context(), true)
	}()
	go func() {
		defer wg.Done()
		content.Stats, errs[2] = h.DB.ListStats(r.Context(), true)
	}()
	go func() {
		defer wg.Done()
		content.About, errs[3] = h.DB.ActiveAbout(r.Context())
	}()
	go func() {
		defer wg.Done()
		content.Testimonials, errs[4] = h.DB.ApprovedTestimonials(r.Context())
	}()
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			writeServerError(w, err)
			return
		}
	}
	if content.Services == nil {
		content.Services = []models.Service{}
	}
	if content.Stats == nil {
		content.Stats = []models.Stat{}
	}
	if content.Testimonials == nil {
		content.Testimonials = []models.Testimonial{}
	}
	writeJSON(w, http.StatusOK, content)
}

// Hero content. Hero is a singleton type: creating a new instance first
// deactivates every existing one, so at most one stays active. The two
// writes are not atomic; concurrent admin writes can race (accepted).

func (h *ContentHandler) ListHero(w http.ResponseWriter, r *http.Request) {
	heroes, err := h.DB.ListHero(r.Context())
	if err != nil {
		writeServerError(w, err)
		return
	}
	if heroes == nil {
		heroes = []models.HeroContent{}
	}
	writeJSON(w, http.StatusOK, heroes)
}

func (h *ContentHandler) CreateHero(w http.ResponseWriter, r *http.Request) {
	h.saveHero(w, r, http.StatusCreated, "Hero content created successfully")
}

func (h *ContentHandler) saveHero(w http.ResponseWriter, r *http.Request, status int, message string) {
	var hero models.HeroContent
	if err := json.NewDecoder(r.Body).Decode(&hero); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if hero.Title == "" || hero.Subtitle == "" {
		writeMessage(w, http.StatusBadRequest, "Title and subtitle are required")
		return
	}
	if err := h.DB.DeactivateHero(r.Context(), primitive.NilObjectID); err != nil {
		writeServerError(w, err)
		return
	}
	hero.ID = primitive.NilObjectID
	hero.Active = true
	hero.CreatedAt = time.Now()
	if _, err := h.DB.InsertHero(r.Context(), &hero); err != nil {
		writeServerError(w, err)
		return
	}
	writeMessage(w, status, message)
}

func (h *ContentHandler) UpdateHero(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var hero models.HeroContent
	if err := json.NewDecoder(r.Body).Decode(&hero); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	// Activating this instance deactivates all others in the same request.
	if hero.Active {
		if err := h.DB.DeactivateHero(r.Context(), id); err != nil {
			writeServerError(w, err)
			return
		}
	}
	if err := h.DB.UpdateHero(r.Context(), id, &hero); err != nil {
		writeServerError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Hero content updated successfully")
}

// DeleteHero removes unconditionally. Deleting the only active hero leaves
// none; the public aggregate then reports no hero content rather than fail.
func (h *ContentHandler) DeleteHero(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid id")
		return
	}
	if err := h.DB.DeleteHero(r.Context(), id); err != nil {
		writeServerError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Hero content deleted successfully")
}

// About content, same singleton rules as hero.

func (h *ContentHandler) ListAbout(w http.ResponseWriter, r *http.Request) {
	abouts, err := h.DB.ListAbout(r.Context())
	if err != nil {
		writeServerError(w, err)
		return
	}
	if abouts == nil {
		abouts = []models.AboutContent{}
	}
	writeJSON(w, http.StatusOK, abouts)
}

func (h *ContentHandler) CreateAbout(w http.ResponseWriter, r *http.Request) {
	h.saveAbout(w, r, http.StatusCreated, "About content created successfully")
}

func (h *ContentHandler) saveAbout(w http.ResponseWriter, r *http.Request, status int, message string) {
	var about models.AboutContent
	if err := json.NewDecoder(r.Body).Decode(&about); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if about.Title == "" || about.Subtitle == "" || about.Description == "" {
		writeMessage(w, http.StatusBadRequest, "Title, subtitle and description are required")
		return
	}
	if err := h.DB.DeactivateAbout(r.Context(), primitive.NilObjectID); err != nil {
		writeServerError(w, err)
		return
	}
	about.ID = primitive.NilObjectID
	about.Active = true
	about.CreatedAt = time.Now()
	if _, err := h.DB.InsertAbout(r.Context(), &about); err != nil {
		writeServerError(w, err)
		return
	}
	writeMessage(w, status, message)
}

func (h *ContentHandler) UpdateAbout(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var about models.AboutContent
	if err := json.NewDecoder(r.Body).Decode(&about); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if about.Active {
		if err := h.DB.DeactivateAbout(r.Context(), id); err != nil {
			writeServerError(w, err)
			return
		}
	}
	if err := h.DB.UpdateAbout(r.Context(), id, &about); err != nil {
		writeServerError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "About content updated successfully")
}

func (h *ContentHandler) DeleteAbout(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid id")
		return
	}
	if err := h.DB.DeleteAbout(r.Context(), id); err != nil {
		writeServerError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "About content deleted successfully")
}

// Services: ordered content, independently active.

func (h *ContentHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.DB.ListServices(r.Context(), false)
	if err != nil {
		writeServerError(w, err)
		return
	}
	if services == nil {
		services = []models.Service{}
	}
	writeJSON(w, http.StatusOK, services)
}

func (h *ContentHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var svc models.Service
	if err := json.NewDecoder(r.Body).Decode(&svc); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if svc.Title == "" || svc.Description == "" {
		writeMessage(w, http.StatusBadRequest, "Title and description are required")
		return
	}
	svc.ID = primitive.NilObjectID
	svc.CreatedAt = time.Now()
	if _, err := h.DB.InsertService(r.Context(), &svc); err != nil {
		writeServerError(w, err)
		return
	}
	writeMessage(w, http.StatusCreated, "Service created successfully")
}

func (h *ContentHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var svc models.Service
	if err := json.NewDecoder(r.Body).Decode(&svc); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.DB.UpdateService(r.Context(), id, &svc); err != nil {
		writeServerError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Service updated successfully")
}

func (h *ContentHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid id")
		return
	}
	if err := h.DB.DeleteService(r.Context(), id); err != nil {
		writeServerError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Service deleted successfully")
}

// Stats: ordered content like services.

func (h *ContentHandler) ListStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.DB.ListStats(r.Context(), false)
	if err != nil {
		writeServerError(w, err)
		return
	}
	if stats == nil {
		stats = []models.Stat{}
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *ContentHandler) CreateStat(w http.ResponseWriter, r *http.Request) {
	var stat models.Stat
	if err := json.NewDecoder(r.Body).Decode(&stat); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if stat.Label == "" || stat.Value == "" {
		writeMessage(w, http.StatusBadRequest, "Label and value are required")
		return
	}
	stat.ID = primitive.NilObjectID
	stat.CreatedAt = time.Now()
	if _, err := h.DB.InsertStat(r.Context(), &stat); err != nil {
		writeServerError(w, err)
		return
	}
	writeMessage(w, http.StatusCreated, "Stat created successfully")
}

func (h *ContentHandler) UpdateStat(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var stat models.Stat
	if err := json.NewDecoder(r.Body).Decode(&stat); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.DB.UpdateStat(r.Context(), id, &stat); err != nil {
		writeServerError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Stat updated successfully")
}

func (h *ContentHandler) DeleteStat(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid id")
		return
	}
	if err := h.DB.DeleteStat(r.Context(), id); err != nil {
		writeServerError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Stat deleted successfully")
}

// UpdateSection is the section-keyed write: the section name selects the
// typed variant the body must decode into. Singleton sections replace the
// active instance; list sections replace their whole collection.
func (h *ContentHandler) UpdateSection(w http.ResponseWriter, r *http.Request) {
	switch chi.URLParam(r, "section") {
	case models.SectionHero:
		h.saveHero(w, r, http.StatusOK, "Content updated successfully")
	case models.SectionAbout:
		h.saveAbout(w, r, http.StatusOK, "Content updated successfully")
	case models.SectionServices:
		h.replaceServices(w, r)
	case models.SectionStats:
		h.replaceStats(w, r)
	default:
		writeMessage(w, http.StatusBadRequest, "Unknown content section")
	}
}

func (h *ContentHandler) replaceServices(w http.ResponseWriter, r *http.Request) {
	var services []models.Service
	if err := json.NewDecoder(r.Body).Decode(&services); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.DB.DeleteAllServices(r.Context()); err != nil {
		writeServerError(w, err)
		return
	}
	now := time.Now()
	for i := range services {
		services[i].ID = primitive.NilObjectID
		services[i].CreatedAt = now
		if _, err := h.DB.InsertService(r.Context(), &services[i]); err != nil {
			writeServerError(w, err)
			return
		}
	}
	writeMessage(w, http.StatusOK, "Content updated successfully")
}

func (h *ContentHandler) replaceStats(w http.ResponseWriter, r *http.Request) {
	var stats []models.Stat
	if err := json.NewDecoder(r.Body).Decode(&stats); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.DB.DeleteAllStats(r.Context()); err != nil {
		writeServerError(w, err)
		return
	}
	now := time.Now()
	for i := range stats {
		stats[i].ID = primitive.NilObjectID
		stats[i].CreatedAt = now
		if _, err := h.DB.InsertStat(r.Context(), &stats[i]); err != nil {
			writeServerError(w, err)
			return
		}
	}
	writeMessage(w, http.StatusOK, "Content updated successfully")
}

// DeleteSectionItem removes one item from a section by id.
func (h *ContentHandler) DeleteSectionItem(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "itemId"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var del func(ctx context.Context, id primitive.ObjectID) error
	switch chi.URLParam(r, "section") {
	case models.SectionHero:
		del = h.DB.DeleteHero
	case models.SectionAbout:
		del = h.DB.DeleteAbout
	case models.SectionServices:
		del = h.DB.DeleteService
	case models.SectionStats:
		del = h.DB.DeleteStat
	default:
		writeMessage(w, http.StatusBadRequest, "Unknown content section")
		return
	}
	if err := del(r.Context(), id); err != nil {
		writeServerError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Item deleted successfully")
}
