package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/application/inventory"
	"github.com/tu-usuario/ventas-pro/internal/application/usecase"
)

// ProductHandler maneja el CRUD de productos y el registro de ventas (protegido).
type ProductHandler struct {
	uc            *usecase.ProductUseCase
	decreaseStock *inventory.DecreaseStockUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, decreaseStock *inventory.DecreaseStockUseCase) *ProductHandler {
	return &ProductHandler{uc: uc, decreaseStock: decreaseStock}
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "title, category_id, stock, precios"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	product, err := h.uc.Create(userID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máx. resultados"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	userID := GetUserID(c)
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	products, err := h.uc.List(userID, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

// GetByTerm godoc
// @Summary      Buscar producto por ID o título
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        term  path  string  true  "UUID o título parcial"
// @Success      200  {array}   dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{term} [get]
func (h *ProductHandler) GetByTerm(c *fiber.Ctx) error {
	userID := GetUserID(c)
	products, err := h.uc.GetByTerm(userID, c.Params("term"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

// Update godoc
// @Summary      Actualizar producto (no modifica stock)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	userID := GetUserID(c)
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	product, err := h.uc.Update(userID, c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Security     Bearer
// @Param        id  path  string  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if err := h.uc.Delete(userID, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DecreaseStock godoc
// @Summary      Registrar venta (descuenta stock + crea movimiento, atómico)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.DecreaseStockRequest  true  "quantity, customer_id, customer_name, unit_price, price_key"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/decrease-stock [post]
func (h *ProductHandler) DecreaseStock(c *fiber.Ctx) error {
	userID := GetUserID(c)
	var in dto.DecreaseStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	product, err := h.decreaseStock.DecreaseStock(c.Context(), inventory.SaleInputDTO{
		UserID:       userID,
		ProductID:    c.Params("id"),
		CustomerID:   in.CustomerID,
		CustomerName: in.CustomerName,
		Quantity:     in.Quantity,
		UnitPrice:    in.UnitPrice,
		PriceKey:     in.PriceKey,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ProductResponse{
		ID:            product.ID,
		CategoryID:    product.CategoryID,
		Title:         product.Title,
		Stock:         product.Stock,
		PurchasePrice: product.PurchasePrice,
		Price:         product.Price,
		Price2:        product.Price2,
		Price3:        product.Price3,
		Price4:        product.Price4,
		CreatedAt:     product.CreatedAt,
		UpdatedAt:     product.UpdatedAt,
	})
}
