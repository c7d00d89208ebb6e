package controllers

import (
	"net/http"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type CategoryController struct {
	categoryService *services.CategoryService
	logger          *zap.Logger
}

func NewCategoryController(categoryService *services.CategoryService, logger *zap.Logger) *CategoryController {
	return &CategoryController{categoryService: categoryService, logger: logger}
}

func (ctrl *CategoryController) GetCategories(c echo.Context) error {
	filter := utils.ParseFilterFromQuery(c.Request().URL.Query())
	categories, total, err := ctrl.categoryService.GetCategories(c.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, categories, "Categories retrieved successfully", http.StatusOK, total)
}

func (ctrl *CategoryController) FindCategory(c echo.Context) error {
	id, err := utils.ParseID(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	category, err := ctrl.categoryService.FindCategory(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, category, "Category retrieved successfully", http.StatusOK)
}

func (ctrl *CategoryController) CreateCategory(c echo.Context) error {
	var payload dto.CreateCategoryDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("Invalid category payload"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	category, err := ctrl.categoryService.CreateCategory(c.Request().Context(), payload.Name)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, category, "Category created successfully", http.StatusCreated)
}

func (ctrl *CategoryController) UpdateCategory(c echo.Context) error {
	id, err := utils.ParseID(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	var payload dto.UpdateCategoryDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("Invalid category payload"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	category, err := ctrl.categoryService.UpdateCategory(c.Request().Context(), id, payload.Name)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, category, "Category updated successfully", http.StatusOK)
}

func (ctrl *CategoryController) DeleteCategory(c echo.Context) error {
	id, err := utils.ParseID(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	if err := ctrl.categoryService.DeleteCategory(c.Request().Context(), id); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, nil, "Category deleted successfully", http.StatusOK)
}
