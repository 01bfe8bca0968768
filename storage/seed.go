package storage

import (
	"log"

	"github.com/shopspring/decimal"

	"github.com/iterrvan/tienda-online/models"
)

func price(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func pricePtr(value string) *decimal.Decimal {
	d := decimal.RequireFromString(value)
	return &d
}

func intPtr(value int) *int {
	return &value
}

// Seed populates an empty store with the demo catalog. It is a no-op when
// categories already exist, so restarting against Postgres will not duplicate
// rows.
func Seed(store Storage) error {
	existing, err := store.GetCategories()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	log.Println("seeding demo catalog")

	categories := []models.Category{
		{Name: "Electrónicos", Description: "Dispositivos electrónicos y tecnología", Slug: "electronicos"},
		{Name: "Ropa", Description: "Vestimenta y accesorios", Slug: "ropa"},
		{Name: "Hogar", Description: "Artículos para el hogar", Slug: "hogar"},
		{Name: "Deportes", Description: "Equipos y accesorios deportivos", Slug: "deportes"},
	}
	bySlug := make(map[string]uint, len(categories))
	for i := range categories {
		if err := store.CreateCategory(&categories[i]); err != nil {
			return err
		}
		bySlug[categories[i].Slug] = categories[i].ID
	}

	electronics := bySlug["electronicos"]

	products := []models.Product{
		{
			Name:           "Smartphone Samsung Galaxy S24",
			Description:    "Smartphone de última generación con cámara profesional y procesador potente",
			Price:          price("899.00"),
			OriginalPrice:  pricePtr("1059.00"),
			Image:          "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			CategoryID:     &electronics,
			StockQuantity:  25,
			Rating:         price("4.8"),
			ReviewCount:    127,
			IsOnSale:       true,
			SalePercentage: intPtr(15),
		},
		{
			Name:          "MacBook Pro 14\" M3",
			Description:   "Laptop profesional con chip M3, ideal para trabajo y creatividad",
			Price:         price("1999.00"),
			Image:         "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			CategoryID:    &electronics,
			StockQuantity: 12,
			Rating:        price("4.7"),
			ReviewCount:   89,
		},
		{
			Name:           "AirPods Pro (3ra Gen)",
			Description:    "Auriculares inalámbricos con cancelación de ruido activa",
			Price:          price("249.00"),
			OriginalPrice:  pricePtr("279.00"),
			Image:          "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			CategoryID:     &electronics,
			StockQuantity:  60,
			Rating:         price("4.9"),
			ReviewCount:    203,
			IsOnSale:       true,
			SalePercentage: intPtr(11),
		},
		{
			Name:          "Apple Watch Series 9",
			Description:   "Reloj inteligente con funciones avanzadas de salud y fitness",
			Price:         price("399.00"),
			Image:         "https://images.unsplash.com/photo-1523275335684-37898b6baf30?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			CategoryID:    &electronics,
			StockQuantity: 30,
			Rating:        price("4.6"),
			ReviewCount:   156,
		},
		{
			Name:          "Cámara Canon EOS R6 Mark II",
			Description:   "Cámara profesional con sensor full frame y grabación 4K",
			Price:         price("2499.00"),
			Image:         "https://images.unsplash.com/photo-1606983340126-99ab4feaa64a?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			CategoryID:    &electronics,
			StockQuantity: 4,
			Rating:        price("4.9"),
			ReviewCount:   67,
		},
		{
			Name:          "iPad Pro 12.9\" M2",
			Description:   "Tablet profesional con pantalla Liquid Retina XDR",
			Price:         price("1099.00"),
			Image:         "https://images.unsplash.com/photo-1544244015-0df4b3ffc6b0?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			CategoryID:    &electronics,
			StockQuantity: 18,
			Rating:        price("4.7"),
			ReviewCount:   94,
		},
		{
			Name:          "PlayStation 5",
			Description:   "Consola de videojuegos de nueva generación",
			Price:         price("499.00"),
			Image:         "https://images.unsplash.com/photo-1606144042614-b2417e99c4e3?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			CategoryID:    &electronics,
			StockQuantity: 8,
			Rating:        price("4.8"),
			ReviewCount:   312,
		},
		{
			Name:           "Monitor Gaming 4K 27\"",
			Description:    "Monitor para gaming con resolución 4K y alta frecuencia de actualización",
			Price:          price("399.00"),
			OriginalPrice:  pricePtr("499.00"),
			Image:          "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			CategoryID:     &electronics,
			StockQuantity:  15,
			Rating:         price("4.5"),
			ReviewCount:    78,
			IsOnSale:       true,
			SalePercentage: intPtr(20),
		},
	}

	for i := range products {
		products[i].InStock = products[i].StockQuantity > 0
		products[i].LowStockThreshold = 5
		products[i].IsActive = true
		if err := store.CreateProduct(&products[i]); err != nil {
			return err
		}
	}

	log.Printf("seeded %d categories and %d products", len(categories), len(products))
	return nil
}
