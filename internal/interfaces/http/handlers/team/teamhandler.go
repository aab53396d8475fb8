package team

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/j-kappa/ticketing-system/internal/application/team/usecases"
	"github.com/j-kappa/ticketing-system/internal/shared/errors"
	"github.com/j-kappa/ticketing-system/internal/shared/logger"
	"github.com/j-kappa/ticketing-system/internal/shared/utils"
)

type CreateMemberRequest struct {
	Name  string `json:"name" binding:"required,max=120"`
	Email string `json:"email" binding:"required,email"`
}

// UpdateMemberRequest is a partial update; nil fields keep the stored value.
type UpdateMemberRequest struct {
	Name  *string `json:"name" binding:"omitempty,max=120"`
	Email *string `json:"email" binding:"omitempty,email"`
}

type TeamHandler struct {
	createMemberUC usecases.CreateMemberExecutor
	updateMemberUC usecases.UpdateMemberExecutor
	deleteMemberUC usecases.DeleteMemberExecutor
	getMemberUC    usecases.GetMemberExecutor
	listMembersUC  usecases.ListMembersExecutor
	logger         logger.Interface
}

func NewTeamHandler(
	createMemberUC usecases.CreateMemberExecutor,
	updateMemberUC usecases.UpdateMemberExecutor,
	deleteMemberUC usecases.DeleteMemberExecutor,
	getMemberUC usecases.GetMemberExecutor,
	listMembersUC usecases.ListMembersExecutor,
) *TeamHandler {
	return &TeamHandler{
		createMemberUC: createMemberUC,
		updateMemberUC: updateMemberUC,
		deleteMemberUC: deleteMemberUC,
		getMemberUC:    getMemberUC,
		listMembersUC:  listMembersUC,
		logger:         logger.NewLogger(),
	}
}

// ListMembers handles GET /team
func (h *TeamHandler) ListMembers(c *gin.Context) {
	result, err := h.listMembersUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetMember handles GET /team/:id
func (h *TeamHandler) GetMember(c *gin.Context) {
	memberID, err := utils.ParseIDParam(c, "id", "team member")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getMemberUC.Execute(c.Request.Context(), usecases.GetMemberQuery{MemberID: memberID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateMember handles POST /team
func (h *TeamHandler) CreateMember(c *gin.Context) {
	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create member", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.createMemberUC.Execute(c.Request.Context(), usecases.CreateMemberCommand{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Team member created successfully")
}

// UpdateMember handles PUT /team/:id
func (h *TeamHandler) UpdateMember(c *gin.Context) {
	memberID, err := utils.ParseIDParam(c, "id", "team member")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update member", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.updateMemberUC.Execute(c.Request.Context(), usecases.UpdateMemberCommand{
		MemberID: memberID,
		Name:     req.Name,
		Email:    req.Email,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Team member updated successfully", result)
}

// DeleteMember handles DELETE /team/:id
func (h *TeamHandler) DeleteMember(c *gin.Context) {
	memberID, err := utils.ParseIDParam(c, "id", "team member")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteMemberUC.Execute(c.Request.Context(), usecases.DeleteMemberCommand{MemberID: memberID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Team member deleted successfully", nil)
}
