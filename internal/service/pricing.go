package service

import (
	"fmt"

	"github.com/fresh-dairy/backend/internal/models"
	"github.com/fresh-dairy/backend/internal/repository"

	"github.com/shopspring/decimal"
)

// OrderLineInput 下单商品行输入
type OrderLineInput struct {
	ProductID uint
	Quantity  int
}

// pricedLine 服务端重新计价后的商品行快照
type pricedLine struct {
	Product   models.Product
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// priceOrderLines 按当前商品目录重算每行价格（不信任客户端价格）。
// 任一商品不存在或已下架则整单拒绝；数量不足 1 时按 1 计。
func priceOrderLines(productRepo repository.ProductRepository, lines []OrderLineInput) ([]pricedLine, decimal.Decimal, error) {
	if len(lines) == 0 {
		return nil, decimal.Zero, ErrValidation
	}

	ids := make([]uint, 0, len(lines))
	for _, line := range lines {
		if line.ProductID == 0 {
			return nil, decimal.Zero, ErrValidation
		}
		ids = append(ids, line.ProductID)
	}

	products, err := productRepo.ListByIDs(ids)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("load products: %w", err)
	}
	productMap := make(map[uint]models.Product, len(products))
	for _, product := range products {
		productMap[product.ID] = product
	}

	priced := make([]pricedLine, 0, len(lines))
	total := decimal.Zero
	for _, line := range lines {
		product, ok := productMap[line.ProductID]
		if !ok {
			return nil, decimal.Zero, fmt.Errorf("%w: product %d", ErrProductNotFound, line.ProductID)
		}
		if !product.IsActive {
			return nil, decimal.Zero, fmt.Errorf("%w: product %d", ErrProductInactive, line.ProductID)
		}
		quantity := line.Quantity
		if quantity < 1 {
			quantity = 1
		}
		unitPrice := product.Price.Decimal
		lineTotal := unitPrice.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
		priced = append(priced, pricedLine{
			Product:   product,
			Quantity:  quantity,
			UnitPrice: unitPrice,
			LineTotal: lineTotal,
		})
		total = total.Add(lineTotal)
	}

	return priced, total.Round(2), nil
}
