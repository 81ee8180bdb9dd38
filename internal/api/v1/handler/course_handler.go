package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"app/internal/api/v1/dto"
	"app/internal/apperr"
	"app/internal/middleware"
	"app/internal/model"
	"app/internal/repository"
)

// CourseHandler handles course listing, detail, and owner-gated mutation
type CourseHandler struct {
	courses  repository.CourseRepository
	users    repository.UserRepository
	validate *validator.Validate
	respond  *Responder
	logger   zerolog.Logger
}

// NewCourseHandler creates a new CourseHandler
func NewCourseHandler(courses repository.CourseRepository, users repository.UserRepository, validate *validator.Validate, respond *Responder, logger zerolog.Logger) *CourseHandler {
	return &CourseHandler{
		courses:  courses,
		users:    users,
		validate: validate,
		respond:  respond,
		logger:   logger.With().Str("handler", "CourseHandler").Logger(),
	}
}

// isOwner is the single ownership predicate shared by update and delete.
func isOwner(course *model.Course, user *model.User) bool {
	return course.UserID == user.ID
}

func courseResponse(c *model.Course) dto.CourseResponseDTO {
	resp := dto.CourseResponseDTO{
		ID:              c.ID,
		Title:           c.Title,
		Description:     c.Description,
		EstimatedTime:   c.EstimatedTime,
		MaterialsNeeded: c.MaterialsNeeded,
		UserID:          c.UserID,
	}
	if c.Owner != nil {
		resp.CourseUser = dto.CourseOwnerDTO{
			ID:           c.Owner.ID,
			FirstName:    c.Owner.FirstName,
			LastName:     c.Owner.LastName,
			EmailAddress: c.Owner.EmailAddress,
		}
	}
	return resp
}

// courseID parses the {id} route parameter. A non-numeric id is treated the
// same as a missing course.
func courseID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	return id, err == nil
}

// currentUser re-resolves the authenticated caller by id, defending against
// a stale context if the account vanished mid-flight.
func (h *CourseHandler) currentUser(r *http.Request) (*model.User, error) {
	user := middleware.CurrentUser(r.Context())
	if user == nil {
		return nil, apperr.Unauthorized()
	}
	fresh, err := h.users.GetUserByID(r.Context(), user.ID)
	if err != nil {
		return nil, err
	}
	if fresh == nil {
		return nil, apperr.Unauthorized()
	}
	return fresh, nil
}

// ListCourses godoc
// @Summary List all courses
// @Description Returns every course with its owner embedded, minus password and timestamps.
// @Tags courses
// @Produce json
// @Success 200 {array} dto.CourseResponseDTO
// @Router /courses [get]
func (h *CourseHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courses.ListCourses(r.Context())
	if err != nil {
		h.respond.Error(w, err)
		return
	}

	resp := make([]dto.CourseResponseDTO, 0, len(courses))
	for i := range courses {
		resp = append(resp, courseResponse(&courses[i]))
	}
	h.respond.JSON(w, http.StatusOK, resp)
}

// GetCourse godoc
// @Summary Get a course
// @Description Returns one course with its owner embedded.
// @Tags courses
// @Produce json
// @Success 200 {object} dto.CourseResponseDTO
// @Failure 404 {object} map[string]string "Course not found"
// @Router /courses/{id} [get]
func (h *CourseHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	id, ok := courseID(r)
	if !ok {
		h.respond.Error(w, apperr.NotFound("Course not found"))
		return
	}

	course, err := h.courses.GetCourseByID(r.Context(), id)
	if err != nil {
		h.respond.Error(w, err)
		return
	}
	if course == nil {
		h.respond.Error(w, apperr.NotFound("Course not found"))
		return
	}

	h.respond.JSON(w, http.StatusOK, courseResponse(course))
}

// CreateCourse godoc
// @Summary Create a course
// @Description Creates a course owned by the authenticated caller.
// @Tags courses
// @Accept json
// @Success 201 {string} string "Created, Location: /courses/{id}"
// @Failure 400 {object} map[string][]string "Validation errors"
// @Failure 401 {object} map[string]string
// @Router /courses [post]
func (h *CourseHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	user, err := h.currentUser(r)
	if err != nil {
		h.respond.Error(w, err)
		return
	}

	var req dto.CourseModifyDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respond.Error(w, apperr.New(http.StatusBadRequest, "Invalid JSON payload: "+err.Error()))
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		h.respond.Error(w, err)
		return
	}

	course := &model.Course{
		Title:           req.Title,
		Description:     req.Description,
		EstimatedTime:   req.EstimatedTime,
		MaterialsNeeded: req.MaterialsNeeded,
		UserID:          user.ID,
	}
	if err := h.courses.CreateCourse(r.Context(), course); err != nil {
		h.respond.Error(w, err)
		return
	}

	h.logger.Info().Int("course_id", course.ID).Int("user_id", user.ID).Msg("Course created")
	h.respond.Created(w, fmt.Sprintf("/courses/%d", course.ID))
}

// UpdateCourse godoc
// @Summary Update a course
// @Description Fully replaces the mutable fields of a course owned by the caller.
// @Tags courses
// @Accept json
// @Success 204 {string} string "No Content"
// @Failure 400 {object} map[string][]string "Validation errors"
// @Failure 403 {object} map[string]string "Not the owner"
// @Failure 404 {object} map[string]string
// @Router /courses/{id} [put]
func (h *CourseHandler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	user, err := h.currentUser(r)
	if err != nil {
		h.respond.Error(w, err)
		return
	}

	id, ok := courseID(r)
	if !ok {
		h.respond.Error(w, apperr.NotFound("The course you are trying to update does not exist anymore."))
		return
	}
	course, err := h.courses.GetCourseByID(r.Context(), id)
	if err != nil {
		h.respond.Error(w, err)
		return
	}
	if course == nil {
		h.respond.Error(w, apperr.NotFound("The course you are trying to update does not exist anymore."))
		return
	}
	if !isOwner(course, user) {
		h.respond.Error(w, apperr.Forbidden("The course you are trying to update does not belong to you."))
		return
	}

	// Existence and ownership are settled before the body is inspected, so
	// a non-owner never learns whether their payload would have validated.
	var req dto.CourseModifyDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respond.Error(w, apperr.New(http.StatusBadRequest, "Invalid JSON payload: "+err.Error()))
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		h.respond.Error(w, err)
		return
	}

	course.Title = req.Title
	course.Description = req.Description
	course.EstimatedTime = req.EstimatedTime
	course.MaterialsNeeded = req.MaterialsNeeded
	if err := h.courses.UpdateCourse(r.Context(), course); err != nil {
		h.respond.Error(w, err)
		return
	}

	h.respond.NoContent(w)
}

// DeleteCourse godoc
// @Summary Delete a course
// @Description Deletes a course owned by the caller.
// @Tags courses
// @Success 204 {string} string "No Content"
// @Failure 403 {object} map[string]string "Not the owner"
// @Failure 404 {object} map[string]string
// @Router /courses/{id} [delete]
func (h *CourseHandler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	user, err := h.currentUser(r)
	if err != nil {
		h.respond.Error(w, err)
		return
	}

	id, ok := courseID(r)
	if !ok {
		h.respond.Error(w, apperr.NotFound("The course you are trying to delete does not exist anymore."))
		return
	}
	course, err := h.courses.GetCourseByID(r.Context(), id)
	if err != nil {
		h.respond.Error(w, err)
		return
	}
	if course == nil {
		h.respond.Error(w, apperr.NotFound("The course you are trying to delete does not exist anymore."))
		return
	}
	if !isOwner(course, user) {
		h.respond.Error(w, apperr.Forbidden("The course you are trying to delete does not belong to you."))
		return
	}

	if err := h.courses.DeleteCourse(r.Context(), id); err != nil {
		h.respond.Error(w, err)
		return
	}

	h.logger.Info().Int("course_id", id).Int("user_id", user.ID).Msg("Course deleted")
	h.respond.NoContent(w)
}
