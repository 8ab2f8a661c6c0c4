package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/dravedigitals/careerguard/server/models"
	"github.com/dravedigitals/careerguard/server/service"
	"github.com/dravedigitals/careerguard/server/store"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const maxEvidenceFiles = 5

type SubmissionsHandler struct {
	DB       *store.DB
	Uploader *service.Uploader
	Mailer   *service.Mailer
}

type contactRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Service  string `json:"service"`
	Message  string `json:"message"`
	Priority string `json:"priority"`
}

// parseContact validates a contact form body and applies defaults:
// status pending, priority medium.
func parseContact(body io.Reader) (*models.Contact, string) {
	var req contactRequest
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		return nil, "Invalid request body"
	}
	if req.Name == "" || req.Email == "" || req.Phone == "" || req.Service == "" || req.Message == "" {
		return nil, "Name, email, phone, service and message are required"
	}
	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !models.StatusValid(models.Priorities, priority) {
		return nil, "Invalid priority"
	}
	return &models.Contact{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Service:   req.Service,
		Message:   req.Message,
		Priority:  priority,
		Status:    models.ContactPending,
		CreatedAt: time.Now(),
	}, ""
}

// SubmitContact accepts a public contact form. The email notification is
// best-effort and never affects the response.
func (h *SubmissionsHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	contact, msg := parseContact(r.Body)
	if msg != "" {
		writeMessage(w, http.StatusBadRequest, msg)
		return
	}
	id, err := h.DB.InsertContact(r.Context(), contact)
	if err != nil {
		writeServerError(w, err)
		return
	}
	contact.ID = id

	go h.notifyContact(contact)

	writeMessage(w, http.StatusCreated, "Contact form submitted successfully")
}

func (h *SubmissionsHandler) notifyContact(contact *models.Contact) {
	subject, err := h.Mailer.NotifyContact(contact)
	if err != nil {
		log.Printf("contact notification: %v", err)
		return
	}
	if subject == "" {
		return
	}
	// Runs after the request completed, so it gets its own context.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err = h.DB.InsertNotificationLog(ctx, &models.NotificationLog{
		ContactID: contact.ID,
		ToEmail:   h.Mailer.To(),
		Subject:   subject,
		SentAt:    time.Now(),
	})
	if err != nil {
		log.Printf("contact notification log: %v", err)
	}
}

func (h *SubmissionsHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.DB.ListContacts(r.Context())
	if err != nil {
		writeServerError(w, err)
		return
	}
	if contacts == nil {
		contacts = []models.Contact{}
	}
	writeJSON(w, http.StatusOK, contacts)
}

func (h *SubmissionsHandler) UpdateContactStatus(w http.ResponseWriter, r *http.Request) {
	h.updateStatus(w, r, models.ContactStatuses, h.DB.UpdateContactStatus, "Contact status updated successfully")
}

// SubmitJobApplication accepts a multipart application with an optional
// resume file.
func (h *SubmissionsHandler) SubmitJobApplication(w http.ResponseWriter, r *http.Request) {
	if h.Uploader.MaxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.Uploader.MaxBytes+1<<20)
	}
	if err := r.ParseMultipartForm(h.Uploader.MaxBytes); err != nil {
		writeMessage(w, http.StatusBadRequest, "Failed to parse multipart form")
		return
	}
	app := &models.JobApplication{
		Name:           r.FormValue("name"),
		Email:          r.FormValue("email"),
		Phone:          r.FormValue("phone"),
		Position:       r.FormValue("position"),
		Experience:     r.FormValue("experience"),
		Skills:         r.FormValue("skills"),
		ExpectedSalary: r.FormValue("expectedSalary"),
		Location:       r.FormValue("location"),
		Status:         models.ApplicationApplied,
		CreatedAt:      time.Now(),
	}
	if app.Name == "" || app.Email == "" || app.Phone == "" || app.Position == "" || app.Experience == "" || app.Skills == "" {
		writeMessage(w, http.StatusBadRequest, "Name, email, phone, position, experience and skills are required")
		return
	}
	if files := r.MultipartForm.File["resume"]; len(files) > 0 {
		name, err := h.Uploader.SaveFile(r.Context(), "resume", files[0])
		if err != nil {
			writeUploadError(w, err)
			return
		}
		app.Resume = name
	}
	if _, err := h.DB.InsertJobApplication(r.Context(), app); err != nil {
		// The stored resume must not outlive a failed submission.
		if app.Resume != "" {
			_ = h.Uploader.Storage.Delete(r.Context(), app.Resume)
		}
		writeServerError(w, err)
		return
	}
	writeMessage(w, http.StatusCreated, "Job application submitted successfully")
}

func (h *SubmissionsHandler) ListJobApplications(w http.ResponseWriter, r *http.Request) {
	apps, err := h.DB.ListJobApplications(r.Context())
	if err != nil {
		writeServerError(w, err)
		return
	}
	if apps == nil {
		apps = []models.JobApplication{}
	}
	writeJSON(w, http.StatusOK, apps)
}

func (h *SubmissionsHandler) UpdateJobApplicationStatus(w http.ResponseWriter, r *http.Request) {
	h.updateStatus(w, r, models.ApplicationStatuses, h.DB.UpdateJobApplicationStatus, "Job application status updated successfully")
}

// SubmitFraudCase accepts a multipart fraud report with up to five
// evidence files. Any file failing validation aborts the whole submission.
func (h *SubmissionsHandler) SubmitFraudCase(w http.ResponseWriter, r *http.Request) {
	limit := h.Uploader.MaxBytes * maxEvidenceFiles
	if limit > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, limit+1<<20)
	}
	if err := r.ParseMultipartForm(h.Uploader.MaxBytes); err != nil {
		writeMessage(w, http.StatusBadRequest, "Failed to parse multipart form")
		return
	}
	fc := &models.FraudCase{
		Name:        r.FormValue("name"),
		Email:       r.FormValue("email"),
		Phone:       r.FormValue("phone"),
		FraudType:   r.FormValue("fraudType"),
		Description: r.FormValue("description"),
		Status:      models.FraudReported,
		CreatedAt:   time.Now(),
	}
	if fc.Name == "" || fc.Email == "" || fc.Phone == "" || fc.FraudType == "" || fc.Description == "" {
		writeMessage(w, http.StatusBadRequest, "Name, email, phone, fraud type and description are required")
		return
	}
	if v := r.FormValue("amount"); v != "" {
		if amount, err := strconv.ParseFloat(v, 64); err == nil {
			fc.Amount = amount
		}
	}
	if dt := parseDate(r.FormValue("dateOfIncident")); dt != nil {
		fc.DateOfIncident = dt
	}
	if v := r.FormValue("policeComplaint"); v != "" {
		fc.PoliceComplaint, _ = strconv.ParseBool(v)
	}
	if files := r.MultipartForm.File["evidence"]; len(files) > 0 {
		stored, err := h.Uploader.SaveAll(r.Context(), "evidence", files, maxEvidenceFiles)
		if err != nil {
			writeUploadError(w, err)
			return
		}
		fc.Evidence = stored
	}
	if _, err := h.DB.InsertFraudCase(r.Context(), fc); err != nil {
		for _, name := range fc.Evidence {
			_ = h.Uploader.Storage.Delete(r.Context(), name)
		}
		writeServerError(w, err)
		return
	}
	writeMessage(w, http.StatusCreated, "Fraud case reported successfully")
}

func (h *SubmissionsHandler) ListFraudCases(w http.ResponseWriter, r *http.Request) {
	cases, err := h.DB.ListFraudCases(r.Context())
	if err != nil {
		writeServerError(w, err)
		return
	}
	if cases == nil {
		cases = []models.FraudCase{}
	}
	writeJSON(w, http.StatusOK, cases)
}

func (h *SubmissionsHandler) UpdateFraudCaseStatus(w http.ResponseWriter, r *http.Request) {
	h.updateStatus(w, r, models.FraudStatuses, h.DB.UpdateFraudCaseStatus, "Fraud case status updated successfully")
}

// Subscribe adds a newsletter signup; duplicate emails are rejected.
func (h *SubmissionsHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" {
		writeMessage(w, http.StatusBadRequest, "Email is required")
		return
	}
	existing, err := h.DB.NewsletterByEmail(r.Context(), req.Email)
	if err != nil {
		writeServerError(w, err)
		return
	}
	if existing != nil {
		writeMessage(w, http.StatusBadRequest, "Email already subscribed")
		return
	}
	_, err = h.DB.InsertNewsletterSignup(r.Context(), &models.NewsletterSignup{
		Email:      req.Email,
		Subscribed: true,
		CreatedAt:  time.Now(),
	})
	if err != nil {
		writeServerError(w, err)
		return
	}
	writeMessage(w, http.StatusCreated, "Successfully subscribed to newsletter")
}

// updateStatus handles the shared shape of the admin status endpoints.
// The status must belong to the kind's closed set; skips and reversals
// within the set are allowed.
func (h *SubmissionsHandler) updateStatus(
	w http.ResponseWriter,
	r *http.Request,
	statuses []string,
	update func(ctx context.Context, id primitive.ObjectID, status string) error,
	message string,
) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !models.StatusValid(statuses, req.Status) {
		writeMessage(w, http.StatusBadRequest, "Invalid status")
		return
	}
	if err := update(r.Context(), id, req.Status); err != nil {
		writeServerError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, message)
}
