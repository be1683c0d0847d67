package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foodoscope/foodoscope-backend/internal/dto"
	"github.com/foodoscope/foodoscope-backend/internal/http/handlers/common"
	"github.com/foodoscope/foodoscope-backend/internal/models"
	"github.com/foodoscope/foodoscope-backend/internal/repository"
	"github.com/foodoscope/foodoscope-backend/internal/validation"
)

// UserHandler отдаёт и обновляет анкету текущего пользователя.
type UserHandler struct {
	users *repository.UserRepository
}

// NewUserHandler создаёт хэндлер.
func NewUserHandler(users *repository.UserRepository) *UserHandler {
	return &UserHandler{users: users}
}

// GetProfile обрабатывает GET /users/profile.
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			common.RespondError(c, http.StatusNotFound, "пользователь не найден")
			return
		}
		common.RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ProfileResponse{Success: true, User: user})
}

// CreateProfile обрабатывает POST /users/profile (первичное заполнение анкеты
// после онбординга).
func (h *UserHandler) CreateProfile(c *gin.Context) {
	h.upsertProfile(c, http.StatusCreated)
}

// UpdateProfile обрабатывает PUT /users/profile.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	h.upsertProfile(c, http.StatusOK)
}

// upsertProfile валидирует переданные поля анкеты и применяет их.
func (h *UserHandler) upsertProfile(c *gin.Context, successStatus int) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}
	if req.Empty() {
		common.RespondBadRequest(c, "нужно передать хотя бы одно поле анкеты")
		return
	}

	if req.Name != nil {
		if err := validation.ValidateName(*req.Name); err != nil {
			common.RespondBadRequest(c, err.Error())
			return
		}
	}
	if req.Gender != nil {
		if err := validation.ValidateGender(*req.Gender); err != nil {
			common.RespondBadRequest(c, err.Error())
			return
		}
	}
	if req.Age != nil {
		if err := validation.ValidateAge(*req.Age); err != nil {
			common.RespondBadRequest(c, err.Error())
			return
		}
	}
	if req.Location != nil {
		if err := validation.ValidateLocation(*req.Location); err != nil {
			common.RespondBadRequest(c, err.Error())
			return
		}
	}
	if req.Height != nil {
		if err := validation.ValidatePositive("рост", *req.Height); err != nil {
			common.RespondBadRequest(c, err.Error())
			return
		}
	}
	if req.Weight != nil {
		if err := validation.ValidatePositive("вес", *req.Weight); err != nil {
			common.RespondBadRequest(c, err.Error())
			return
		}
	}
	if req.GoalWeight != nil {
		if err := validation.ValidatePositive("целевой вес", *req.GoalWeight); err != nil {
			common.RespondBadRequest(c, err.Error())
			return
		}
	}
	if req.Goals != nil {
		if err := validation.ValidateGoals(req.Goals); err != nil {
			common.RespondBadRequest(c, err.Error())
			return
		}
	}

	user, err := h.users.UpdateProfile(c.Request.Context(), userID, &models.ProfileUpdate{
		Name:       req.Name,
		Gender:     req.Gender,
		Age:        req.Age,
		Location:   req.Location,
		Height:     req.Height,
		Weight:     req.Weight,
		GoalWeight: req.GoalWeight,
		Goals:      req.Goals,
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			common.RespondError(c, http.StatusNotFound, "пользователь не найден")
			return
		}
		common.RespondAppError(c, err)
		return
	}

	c.JSON(successStatus, dto.ProfileResponse{Success: true, User: user})
}
