package plan

import (
	"errors"
	"net/http"

	"dietplanner/internal/logger"
	"dietplanner/internal/selector"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type planRequest struct {
	UserProfile

	// Seed replays a previous random outcome for diet preference "both".
	Seed *int64 `json:"seed"`
	// BothMode pins the "both" coin: random (default), veg or nonveg.
	BothMode string `json:"both_mode"`
}

func (r planRequest) flipper() (selector.Flipper, error) {
	switch r.BothMode {
	case "veg":
		return selector.AlwaysVeg, nil
	case "nonveg":
		return selector.AlwaysNonVeg, nil
	case "", "random":
		if r.Seed != nil {
			return selector.NewRandomFlipper(*r.Seed), nil
		}
		return nil, nil
	}
	return nil, ErrInvalidInput
}

// --------------------------------------------------
// POST /plans
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrInvalidInput.Error()})
		return
	}

	flipper, err := req.flipper()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrInvalidInput.Error()})
		return
	}

	result, err := h.service.Generate(req.UserProfile, Options{Flipper: flipper})
	if err != nil {
		h.fail(c, err)
		return
	}

	logger.Info("plan generated",
		zap.String("plan_id", result.ID),
		zap.String("diet_preference", string(req.DietPreference)),
		zap.Int("target_calories", result.TargetCalories),
		zap.Int("total_calories", result.Calories),
		zap.Int("total_cost", result.Cost),
	)

	c.JSON(http.StatusCreated, result)
}

// --------------------------------------------------
// POST /metrics
// --------------------------------------------------
func (h *Handler) Metrics(c *gin.Context) {
	var p UserProfile
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrInvalidInput.Error()})
		return
	}

	m, err := h.service.Metrics(p)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, m)
}

func (h *Handler) fail(c *gin.Context, err error) {
	if errors.Is(err, ErrInvalidInput) {
		logger.Warn("rejected profile", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrInvalidInput.Error()})
		return
	}

	logger.Error("plan generation failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate plan"})
}
