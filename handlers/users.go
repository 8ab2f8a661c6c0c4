package handlers

import (
	"net/http"

	"github.com/dravedigitals/careerguard/server/models"
	"github.com/dravedigitals/careerguard/server/store"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UsersHandler struct {
	DB *store.DB
}

// List returns all users newest-first. The password hash is excluded via
// the model's json tag; credential material is never serialized.
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.DB.ListUsers(r.Context())
	if err != nil {
		writeServerError(w, err)
		return
	}
	if users == nil {
		users = []models.User{}
	}
	writeJSON(w, http.StatusOK, users)
}

// Delete removes a user by id. Deleting an id that does not exist still
// succeeds; the operation is idempotent by contract.
func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	if err := h.DB.DeleteUser(r.Context(), id); err != nil {
		writeServerError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "User deleted successfully")
}
