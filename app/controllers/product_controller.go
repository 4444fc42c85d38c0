package controllers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/salonhub/salonhub/app/models"
	"github.com/salonhub/salonhub/app/repository"
	"github.com/salonhub/salonhub/internal/pkg/requestctx"
)

// ProductController handles the salon's retail inventory.
type ProductController struct {
	products repository.ProductRepository
	validate *validator.Validate
}

// NewProductController creates a product controller.
func NewProductController(products repository.ProductRepository) *ProductController {
	return &ProductController{products: products, validate: validator.New()}
}

func (pc *ProductController) HandleList(c *fiber.Ctx) error {
	products, err := pc.products.List(requestctx.SalonID(c))
	if err != nil {
		return internalError(c, "Failed to list products")
	}
	return c.JSON(fiber.Map{"products": products})
}

type productRequest struct {
	Name  string  `json:"name"`
	Stock int     `json:"stock"`
	Price float64 `json:"price"`
}

func (pc *ProductController) HandleCreate(c *fiber.Ctx) error {
	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return validationFailed(c, "Invalid request body")
	}

	product := &models.Product{
		SalonID: requestctx.SalonID(c),
		Name:    req.Name,
		Stock:   req.Stock,
		Price:   req.Price,
	}
	if err := pc.validate.Struct(product); err != nil {
		return validationFailed(c, err.Error())
	}
	if err := pc.products.Create(product); err != nil {
		return internalError(c, "Failed to create product")
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

func (pc *ProductController) HandleUpdate(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return validationFailed(c, "Invalid product id")
	}
	product, err := pc.products.GetByID(requestctx.SalonID(c), id)
	if err != nil {
		return notFound(c, "Product not found")
	}

	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return validationFailed(c, "Invalid request body")
	}
	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Price > 0 {
		product.Price = req.Price
	}
	if err := pc.validate.Struct(product); err != nil {
		return validationFailed(c, err.Error())
	}
	if err := pc.products.Update(product); err != nil {
		return internalError(c, "Failed to update product")
	}
	return c.JSON(product)
}

type stockRequest struct {
	Delta int `json:"delta"`
}

// HandleAdjustStock applies a stock delta (restock or correction).
func (pc *ProductController) HandleAdjustStock(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return validationFailed(c, "Invalid product id")
	}
	var req stockRequest
	if err := c.BodyParser(&req); err != nil {
		return validationFailed(c, "Invalid request body")
	}
	if req.Delta == 0 {
		return validationFailed(c, "Delta must be non-zero")
	}
	salonID := requestctx.SalonID(c)
	if err := pc.products.AdjustStock(salonID, id, req.Delta); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return notFound(c, "Product not found")
		}
		if errors.Is(err, repository.ErrInsufficientStock) {
			return jsonError(c, fiber.StatusConflict, "conflict", "Stock cannot go negative")
		}
		return internalError(c, "Failed to adjust stock")
	}
	product, err := pc.products.GetByID(salonID, id)
	if err != nil {
		return notFound(c, "Product not found")
	}
	return c.JSON(product)
}

func (pc *ProductController) HandleDelete(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return validationFailed(c, "Invalid product id")
	}
	if err := pc.products.Delete(requestctx.SalonID(c), id); err != nil {
		return internalError(c, "Failed to delete product")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
