// Copyright (c) 2026 MVS Mart. All rights reserved.
// Author: dev@mvsmart.in

package martd

import "github.com/mvsmart/storefront/internal/commerce"

// Seed loads a small demonstration catalog into the store.
//
// IDs are stable so that scripted sessions and tests can reference them.
func Seed(store *Store) {
	store.SetProducts([]commerce.Product{
		{
			ID:          "prod-men-shirt-01",
			Title:       "Classic Cotton Shirt",
			Description: "Breathable full-sleeve cotton shirt for everyday wear.",
			Category:    "men",
			Price:       499,
			ImgSrc:      "/images/men/cotton-shirt.jpg",
		},
		{
			ID:          "prod-men-denim-02",
			Title:       "Slim Fit Denim Jeans",
			Description: "Stretchable slim fit denim with a mid-rise waist.",
			Category:    "men",
			Price:       1299,
			ImgSrc:      "/images/men/denim-jeans.jpg",
		},
		{
			ID:          "prod-women-kurti-01",
			Title:       "Printed Rayon Kurti",
			Description: "A-line printed kurti in soft rayon fabric.",
			Category:    "women",
			Price:       699,
			ImgSrc:      "/images/women/rayon-kurti.jpg",
		},
		{
			ID:          "prod-women-saree-02",
			Title:       "Banarasi Silk Saree",
			Description: "Handwoven Banarasi silk saree with zari border.",
			Category:    "women",
			Price:       2499,
			ImgSrc:      "/images/women/banarasi-saree.jpg",
		},
		{
			ID:          "prod-kids-tee-01",
			Title:       "Cartoon Print T-Shirt",
			Description: "Soft cotton tee with a playful cartoon print.",
			Category:    "kids",
			Price:       299,
			ImgSrc:      "/images/kids/cartoon-tee.jpg",
		},
		{
			ID:          "prod-kids-frock-02",
			Title:       "Floral Summer Frock",
			Description: "Lightweight floral frock for warm afternoons.",
			Category:    "kids",
			Price:       549,
			ImgSrc:      "/images/kids/summer-frock.jpg",
		},
		{
			ID:          "prod-elec-buds-01",
			Title:       "Wireless Earbuds",
			Description: "Bluetooth 5.3 earbuds with 24-hour case battery.",
			Category:    "electronics",
			Price:       1799,
			ImgSrc:      "/images/electronics/earbuds.jpg",
		},
		{
			ID:          "prod-elec-watch-02",
			Title:       "Fitness Smartwatch",
			Description: "Heart-rate and sleep tracking with a 7-day battery.",
			Category:    "electronics",
			Price:       2299,
			ImgSrc:      "/images/electronics/smartwatch.jpg",
		},
		{
			ID:          "prod-home-lamp-01",
			Title:       "Bedside Table Lamp",
			Description: "Warm-white lamp with a fabric shade and wooden base.",
			Category:    "home",
			Price:       899,
			ImgSrc:      "/images/home/table-lamp.jpg",
		},
		{
			ID:          "prod-home-sheet-02",
			Title:       "King Size Bedsheet Set",
			Description: "300 TC cotton bedsheet with two pillow covers.",
			Category:    "home",
			Price:       1199,
			ImgSrc:      "/images/home/bedsheet-set.jpg",
		},
	})
}
