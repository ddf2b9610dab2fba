package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"staynest/dto"
	"staynest/middleware"
	"staynest/response"
	"staynest/services"
)

type ReviewController struct {
	reviewService *services.ReviewService
}

func NewReviewController(reviewService *services.ReviewService) *ReviewController {
	return &ReviewController{reviewService: reviewService}
}

// SubmitReview godoc
// @Summary Viết review cho booking đã check-out
// @Tags reviews
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param body body dto.CreateReviewRequest true "Nội dung review"
// @Success 201 {object} response.Response
// @Router /bookings/{id}/review [post]
func (ctrl *ReviewController) SubmitReview(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	bookingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "입력값이 올바르지 않습니다.")
		return
	}

	review, err := ctrl.reviewService.SubmitReview(bookingID, userID, req)
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.Created(c, review)
}

// ListRoomReviews godoc
// @Summary Review gần nhất của phòng
// @Tags reviews
// @Produce json
// @Param id path int true "Room ID"
// @Param limit query int false "Số lượng tối đa"
// @Success 200 {object} response.Response
// @Router /rooms/{id}/reviews [get]
func (ctrl *ReviewController) ListRoomReviews(c *gin.Context) {
	roomID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))

	reviews, err := ctrl.reviewService.ListRoomReviews(roomID, limit)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	responses := make([]dto.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		resp := dto.ReviewResponse{
			ID:        review.ID,
			Rating:    review.Rating,
			Content:   review.Content,
			CreatedAt: review.CreatedAt,
		}
		if review.User != nil {
			resp.User = dto.UserInfo{
				ID:    review.User.ID,
				Name:  review.User.Name,
				Image: review.User.Image,
			}
		}
		responses = append(responses, resp)
	}
	response.Success(c, responses)
}
