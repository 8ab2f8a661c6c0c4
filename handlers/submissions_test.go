package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"strings"
	"testing"

	"github.com/dravedigitals/careerguard/server/models"
	"github.com/dravedigitals/careerguard/server/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestParseContactDefaults(t *testing.T) {
	body := `{"name":"A","email":"a@b.com","phone":"123","service":"x","message":"hi"}`
	contact, msg := parseContact(strings.NewReader(body))
	require.Empty(t, msg)

	assert.Equal(t, "A", contact.Name)
	assert.Equal(t, "a@b.com", contact.Email)
	assert.Equal(t, models.ContactPending, contact.Status)
	assert.Equal(t, models.PriorityMedium, contact.Priority)
	assert.False(t, contact.CreatedAt.IsZero())
}

func TestParseContactKeepsExplicitPriority(t *testing.T) {
	body := `{"name":"A","email":"a@b.com","phone":"123","service":"x","message":"hi","priority":"high"}`
	contact, msg := parseContact(strings.NewReader(body))
	require.Empty(t, msg)
	assert.Equal(t, models.PriorityHigh, contact.Priority)
}

func TestParseContactRejectsUnknownPriority(t *testing.T) {
	body := `{"name":"A","email":"a@b.com","phone":"123","service":"x","message":"hi","priority":"urgent"}`
	_, msg := parseContact(strings.NewReader(body))
	assert.NotEmpty(t, msg)
}

func TestParseContactMissingFields(t *testing.T) {
	cases := []string{
		`{}`,
		`{"name":"A"}`,
		`{"name":"A","email":"a@b.com","phone":"123","service":"x"}`, // no message
		`{"email":"a@b.com","phone":"123","service":"x","message":"hi"}`, // no name
		`not json`,
	}
	for _, body := range cases {
		_, msg := parseContact(strings.NewReader(body))
		assert.NotEmpty(t, msg, body)
	}
}

func TestParseDate(t *testing.T) {
	assert.Nil(t, parseDate(""))
	assert.Nil(t, parseDate("yesterday"))

	d := parseDate("1995-06-15")
	require.NotNil(t, d)
	assert.Equal(t, 1995, d.Year())

	d = parseDate("1995-06-15T00:00:00Z")
	require.NotNil(t, d)
	assert.Equal(t, 1995, d.Year())
}

func TestSubmitJobApplicationCleansUpResumeOnInsertFailure(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("resume removed", func(mt *mtest.T) {
		dir := mt.TempDir()
		storage, err := service.NewDiskStorage(dir)
		require.NoError(mt, err)
		h := &SubmissionsHandler{
			DB:       mockStore(mt),
			Uploader: &service.Uploader{Storage: storage, MaxBytes: 10 << 20},
		}
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate"}))

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		fields := map[string]string{
			"name": "A", "email": "a@b.com", "phone": "1",
			"position": "dev", "experience": "2", "skills": "go",
		}
		for k, v := range fields {
			require.NoError(mt, mw.WriteField(k, v))
		}
		part, err := mw.CreatePart(textproto.MIMEHeader{
			"Content-Disposition": {`form-data; name="resume"; filename="cv.pdf"`},
			"Content-Type":        {"application/pdf"},
		})
		require.NoError(mt, err)
		_, err = part.Write([]byte("%PDF"))
		require.NoError(mt, err)
		require.NoError(mt, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/job-applications", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		rec := httptest.NewRecorder()
		h.SubmitJobApplication(rec, req)

		assert.Equal(mt, http.StatusInternalServerError, rec.Code)
		// The stored file does not outlive the failed submission.
		entries, err := os.ReadDir(dir)
		require.NoError(mt, err)
		assert.Empty(mt, entries)
	})
}
