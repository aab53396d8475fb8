package attachment

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/j-kappa/ticketing-system/internal/application/ticket/usecases"
	"github.com/j-kappa/ticketing-system/internal/shared/errors"
	"github.com/j-kappa/ticketing-system/internal/shared/logger"
	"github.com/j-kappa/ticketing-system/internal/shared/utils"
)

type AttachmentHandler struct {
	addAttachmentUC    usecases.AddAttachmentExecutor
	listAttachmentsUC  usecases.ListAttachmentsExecutor
	getAttachmentUC    usecases.GetAttachmentExecutor
	deleteAttachmentUC usecases.DeleteAttachmentExecutor
	logger             logger.Interface
}

func NewAttachmentHandler(
	addAttachmentUC usecases.AddAttachmentExecutor,
	listAttachmentsUC usecases.ListAttachmentsExecutor,
	getAttachmentUC usecases.GetAttachmentExecutor,
	deleteAttachmentUC usecases.DeleteAttachmentExecutor,
) *AttachmentHandler {
	return &AttachmentHandler{
		addAttachmentUC:    addAttachmentUC,
		listAttachmentsUC:  listAttachmentsUC,
		getAttachmentUC:    getAttachmentUC,
		deleteAttachmentUC: deleteAttachmentUC,
		logger:             logger.NewLogger(),
	}
}

// Upload handles POST /tickets/:id/attachments
func (h *AttachmentHandler) Upload(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("no file uploaded"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Errorw("failed to open uploaded file", "error", err)
		utils.ErrorResponseWithError(c, errors.NewInternalError("failed to read uploaded file"))
		return
	}
	defer file.Close()

	result, err := h.addAttachmentUC.Execute(c.Request.Context(), usecases.AddAttachmentCommand{
		TicketID:     ticketID,
		OriginalName: fileHeader.Filename,
		Mimetype:     fileHeader.Header.Get("Content-Type"),
		Size:         fileHeader.Size,
		Content:      file,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Attachment uploaded successfully")
}

// ListByTicket handles GET /tickets/:id/attachments
func (h *AttachmentHandler) ListByTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listAttachmentsUC.Execute(c.Request.Context(), usecases.ListAttachmentsQuery{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Serve handles GET /attachments/:id, streaming the file inline.
func (h *AttachmentHandler) Serve(c *gin.Context) {
	attachmentID, err := utils.ParseIDParam(c, "id", "attachment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getAttachmentUC.Execute(c.Request.Context(), usecases.GetAttachmentQuery{AttachmentID: attachmentID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer result.Content.Close()

	c.Header("Content-Type", result.Attachment.Mimetype)
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", result.Attachment.OriginalName))
	c.Header("Content-Length", strconv.FormatInt(result.Attachment.Size, 10))
	c.Status(http.StatusOK)

	if _, err := io.Copy(c.Writer, result.Content); err != nil {
		// Headers are already sent; all we can do is log the broken stream.
		h.logger.Warnw("failed to stream attachment", "attachment_id", attachmentID, "error", err)
	}
}

// Delete handles DELETE /attachments/:id
func (h *AttachmentHandler) Delete(c *gin.Context) {
	attachmentID, err := utils.ParseIDParam(c, "id", "attachment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteAttachmentUC.Execute(c.Request.Context(), usecases.DeleteAttachmentCommand{AttachmentID: attachmentID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Attachment deleted successfully", nil)
}
