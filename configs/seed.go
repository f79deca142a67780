package configs

import (
	"github.com/sumtl/restaurant-reviews-app/entity"
)

func strPtr(s string) *string { return &s }

// SeedMenuItems remplit le catalogue s'il est vide.
// Le menu est en lecture seule côté API: le seed est la seule écriture.
func SeedMenuItems() error {
	var count int64
	if err := db.Model(&entity.MenuItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	items := []entity.MenuItem{
		{Name: "Combo Hot Dog au Bœuf", Description: strPtr("Hot Dog au Bœuf 1/4 livre et Boisson Fontaine 20 oz"), ImageURL: strPtr("/images/costco-food/hot-dog.jpg")},
		{Name: "Pizza au Fromage", Description: strPtr("Pizza au Fromage 18 pouces (6 tranches)"), ImageURL: strPtr("/images/costco-food/cheese-pizza.jpg")},
		{Name: "Pizza Pepperoni", Description: strPtr("Pizza Pepperoni 18 pouces (6 tranches)"), ImageURL: strPtr("/images/costco-food/pepperoni-pizza.avif")},
		{Name: "Sandwich", Description: strPtr("Sandwich à la viande fumée style Montréal"), ImageURL: strPtr("/images/costco-food/sandwich.jpg")},
		{Name: "Poutine", Description: strPtr("Délicieuse poutine avec fromage en grains et sauce"), ImageURL: strPtr("/images/costco-food/poutine.jpg")},
		{Name: "Frites", Description: strPtr("Frites croustillantes"), ImageURL: strPtr("/images/costco-food/fries.jpg")},
		{Name: "Lanières de Poulet et Frites", Description: strPtr("Lanières de poulet servies avec des frites"), ImageURL: strPtr("/images/costco-food/chicken-tenders.jpg")},
		{Name: "Biscuit", Description: strPtr("Biscuit aux Pépites de Chocolat Double"), ImageURL: strPtr("/images/costco-food/cookie.jpg")},
		{Name: "Cornet de Crème Glacée", Description: strPtr("Cornet de Crème Glacée Chocolat ou Vanille"), ImageURL: strPtr("/images/costco-food/icecream.png")},
	}
	return db.Create(&items).Error
}
