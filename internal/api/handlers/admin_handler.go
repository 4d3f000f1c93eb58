package handlers

import (
	"time"

	"pantry-backend/domain"
	"pantry-backend/internal/api/presenters"
	"pantry-backend/pkg/recipe"
	"pantry-backend/pkg/translation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AdminHandler interface {
		ImportRecipe(c *fiber.Ctx) error
		ImportFromSearch(c *fiber.Ctx) error

		RunTranslations(c *fiber.Ctx) error
		ResetTranslations(c *fiber.Ctx) error
		RecoverTranslations(c *fiber.Ctx) error
	}

	adminHandler struct {
		importService recipe.ImportService
		queue         translation.Queue
		validator     *validator.Validate
	}
)

func NewAdminHandler(importService recipe.ImportService, queue translation.Queue, validator *validator.Validate) AdminHandler {
	return &adminHandler{
		importService: importService,
		queue:         queue,
		validator:     validator,
	}
}

func (h *adminHandler) ImportRecipe(c *fiber.Ctx) error {
	res, err := h.importService.ImportRecipe(c.Context(), c.Params("spoonacular_id"))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err, fiber.StatusBadRequest), domain.MessageFailedImportRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessImportRecipe)
}

func (h *adminHandler) ImportFromSearch(c *fiber.Ctx) error {
	var req domain.ImportSearchRequest
	if err := c.BodyParser(&req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedImportRecipe, err)
	}

	res, err := h.importService.ImportFromSearch(c.Context(), req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err, fiber.StatusBadRequest), domain.MessageFailedImportRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessImportRecipe)
}

func (h *adminHandler) RunTranslations(c *fiber.Ctx) error {
	res, err := h.queue.RunBatch(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedRunTranslations, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRunTranslations)
}

func (h *adminHandler) ResetTranslations(c *fiber.Ctx) error {
	var req domain.ResetTranslationsRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
		}
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedResetTranslations, err)
	}
	if req.Lang != "" && req.Lang != h.queue.Lang() {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedResetTranslations, domain.ErrUnsupportedLang)
	}

	if req.ClearTranslations {
		if err := h.queue.ClearTranslations(c.Context()); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedResetTranslations, err)
		}
	}

	n, err := h.queue.ResetJobs(c.Context(), req.Statuses...)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedResetTranslations, err)
	}

	return presenters.SuccessResponse(c, domain.TranslationResetResponse{Affected: n}, fiber.StatusOK, domain.MessageSuccessResetTranslations)
}

func (h *adminHandler) RecoverTranslations(c *fiber.Ctx) error {
	var req domain.RecoverTranslationsRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
		}
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRecoverTranslations, err)
	}
	if req.Lang != "" && req.Lang != h.queue.Lang() {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRecoverTranslations, domain.ErrUnsupportedLang)
	}

	staleBefore := time.Now().UTC().Add(-time.Duration(req.OlderThanMinutes) * time.Minute)
	n, err := h.queue.RecoverStuck(c.Context(), staleBefore)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedRecoverTranslations, err)
	}

	return presenters.SuccessResponse(c, domain.TranslationResetResponse{Affected: n}, fiber.StatusOK, domain.MessageSuccessRecoverTranslations)
}
