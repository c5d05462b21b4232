package entity

import "slices"

// FoodType is a cuisine category used both as a filter value and as the key of
// its display icon.
type FoodType struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// FoodTypes is the fixed cuisine vocabulary, in display order.
var FoodTypes = []FoodType{
	{Name: "Japonesa", Icon: "japonesa"},
	{Name: "Italiana", Icon: "italiana"},
	{Name: "Mexicana", Icon: "mexicana"},
	{Name: "Brasileira", Icon: "brasileira"},
	{Name: "Chinesa", Icon: "chinesa"},
	{Name: "Indiana", Icon: "indiana"},
	{Name: "Mediterrânea", Icon: "mediterranea"},
	{Name: "Francesa", Icon: "francesa"},
	{Name: "Alemã", Icon: "alema"},
	{Name: "Americana", Icon: "lanches"},
	{Name: "Tailandesa", Icon: "tailandesa"},
	{Name: "Coreana", Icon: "coreana"},
	{Name: "Árabe", Icon: "arabe"},
	{Name: "Espanhola", Icon: "espanhola"},
	{Name: "Vietnamita", Icon: "vietnamita"},
	{Name: "Caribenha", Icon: "caribenha"},
	{Name: "Grega", Icon: "grega"},
	{Name: "Doces", Icon: "doces"},
	{Name: "Vegetariana", Icon: "vegetariana"},
	{Name: "Low Carb", Icon: "low_carb"},
}

// ProfileImages is the fixed set of built-in profile picture keys.
var ProfileImages = []string{
	"profile1", "profile2", "profile3", "profile4", "profile5",
	"profile6", "profile7", "profile8", "profile9", "profile10",
	"profile11", "profile12", "profile13", "profile14", "profile15",
	"profile16", "profile17", "profile18", "profile19", "profile20",
}

// IsKnownFoodType reports whether name is part of the cuisine vocabulary.
func IsKnownFoodType(name string) bool {
	return slices.ContainsFunc(FoodTypes, func(ft FoodType) bool {
		return ft.Name == name
	})
}

// FoodTypeIcon returns the icon key of a food type and whether it is known.
func FoodTypeIcon(name string) (string, bool) {
	for _, ft := range FoodTypes {
		if ft.Name == name {
			return ft.Icon, true
		}
	}

	return "", false
}

// IsBuiltinProfileImage reports whether ref is one of ProfileImages.
func IsBuiltinProfileImage(ref string) bool {
	return slices.Contains(ProfileImages, ref)
}
