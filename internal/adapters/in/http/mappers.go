package http

import (
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/customer"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/product"
	"foodorder/internal/generated/servers"
	"foodorder/internal/pkg/errs"
)

func parseID(param string, id servers.ID) (kernel.UUID, error) {
	parsed, err := kernel.UUIDFrom(id)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	return parsed, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func customerFromDomain(c *customer.Customer) servers.Customer {
	return servers.Customer{
		Id:          c.ID().Bytes(),
		LineUserId:  c.LineUserID(),
		DisplayName: c.DisplayName(),
		PictureUrl:  optional(c.PictureURL()),
		Nickname:    optional(c.Nickname()),
		IsActive:    c.IsActive(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
		LastLoginAt: c.LastLoginAt(),
	}
}

func customerFromView(v queries.CustomerView) servers.Customer {
	return servers.Customer{
		Id:          v.ID.Bytes(),
		LineUserId:  v.LineUserID,
		DisplayName: v.DisplayName,
		PictureUrl:  optional(v.PictureURL),
		Nickname:    optional(v.Nickname),
		IsActive:    v.IsActive,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
		LastLoginAt: v.LastLoginAt,
	}
}

func productFromDomain(p *product.Product) servers.Product {
	return servers.Product{
		Id:          p.ID().Bytes(),
		Name:        p.Name(),
		Description: optional(p.Description()),
		Price:       p.Price().Yen(),
		ImageUrl:    optional(p.ImageURL()),
		Category:    optional(p.Category().String()),
		IsActive:    p.IsActive(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func productFromView(v queries.ProductView) servers.Product {
	return servers.Product{
		Id:          v.ID.Bytes(),
		Name:        v.Name,
		Description: optional(v.Description),
		Price:       v.Price,
		ImageUrl:    optional(v.ImageURL),
		Category:    optional(v.Category),
		IsActive:    v.IsActive,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func productsFromViews(views []queries.ProductView) []servers.Product {
	out := make([]servers.Product, len(views))
	for i, v := range views {
		out[i] = productFromView(v)
	}
	return out
}

// productDetails turns a request body into domain details. isActive
// defaults to true.
func productDetails(in servers.ProductInput) (product.Details, error) {
	category, err := product.ParseCategory(deref(in.Category))
	if err != nil {
		return product.Details{}, err
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	return product.Details{
		Name:        in.Name,
		Description: deref(in.Description),
		Price:       in.Price,
		ImageURL:    deref(in.ImageUrl),
		Category:    category,
		IsActive:    active,
	}, nil
}

func cartItemFromLine(l commands.CartLine) servers.CartItem {
	return servers.CartItem{
		Id:                 l.Item.ID().Bytes(),
		ProductId:          l.Product.ID().Bytes(),
		ProductName:        l.Product.Name(),
		ProductDescription: optional(l.Product.Description()),
		ProductImageUrl:    optional(l.Product.ImageURL()),
		ProductCategory:    optional(l.Product.Category().String()),
		Price:              l.Product.Price().Yen(),
		Quantity:           l.Item.Quantity(),
		Subtotal:           l.Subtotal().Yen(),
		CreatedAt:          l.Item.CreatedAt(),
		UpdatedAt:          l.Item.UpdatedAt(),
	}
}

func cartFromView(v queries.CartView) servers.Cart {
	items := make([]servers.CartItem, len(v.Items))
	for i, line := range v.Items {
		items[i] = servers.CartItem{
			Id:                 line.ID.Bytes(),
			ProductId:          line.ProductID.Bytes(),
			ProductName:        line.ProductName,
			ProductDescription: optional(line.ProductDescription),
			ProductImageUrl:    optional(line.ProductImageURL),
			ProductCategory:    optional(line.ProductCategory),
			Price:              line.Price,
			Quantity:           line.Quantity,
			Subtotal:           line.Subtotal,
			CreatedAt:          line.CreatedAt,
			UpdatedAt:          line.UpdatedAt,
		}
	}
	return servers.Cart{Items: items, TotalAmount: v.TotalAmount, ItemCount: v.ItemCount}
}

func orderFromView(v queries.OrderView) servers.Order {
	items := make([]servers.OrderItem, len(v.Items))
	for i, item := range v.Items {
		items[i] = servers.OrderItem{
			Id:              item.ID.Bytes(),
			ProductId:       item.ProductID.Bytes(),
			ProductName:     item.ProductName,
			ProductPrice:    item.ProductPrice,
			ProductImageUrl: optional(item.ProductImageURL),
			Quantity:        item.Quantity,
			Subtotal:        item.Subtotal,
		}
	}

	return servers.Order{
		Id:          v.ID.Bytes(),
		OrderNumber: v.OrderNumber,
		Customer: &servers.CustomerSummary{
			Id:          v.Customer.ID.Bytes(),
			DisplayName: v.Customer.DisplayName,
			PictureUrl:  optional(v.Customer.PictureURL),
		},
		Status:        servers.OrderStatus(v.Status),
		TotalAmount:   v.TotalAmount,
		PaymentStatus: servers.PaymentStatus(v.PaymentStatus),
		PaymentMethod: optional(v.PaymentMethod),
		Items:         items,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
		CompletedAt:   v.CompletedAt,
	}
}

func ordersFromViews(views []queries.OrderView) []servers.Order {
	out := make([]servers.Order, len(views))
	for i, v := range views {
		out[i] = orderFromView(v)
	}
	return out
}
