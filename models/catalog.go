package models

// Restaurant constants. RestaurantID disambiguates webhook events in the
// shared multi-tenant payment account.
const (
	RestaurantID      = "saveurs-maghreb"
	RestaurantName    = "Les Saveurs du Maghreb"
	RestaurantAddress = "21 Rue des Maréchaux, 54000 Nancy"
	RestaurantCity    = "Nancy"
	RestaurantZipCode = "54000"
	RestaurantPhone   = "03 83 32 10 30"
	RestaurantEmail   = "lessaveursdumaghreb16@gmail.com"

	// DeliveryFee is the flat surcharge applied to delivery orders only.
	DeliveryFee = 2.50
)

var MenuCategories = []string{
	"Couscous",
	"Tajines",
	"Grillades",
	"Entrées",
	"Salades",
	"Accompagnements",
	"Desserts",
	"Boissons",
}

// MenuItems is the static catalog. Composed items carry priced choices; a
// full selection sums to the advertised price.
var MenuItems = []MenuItem{
	// Couscous
	{ID: "couscous-royal", Name: "Couscous Royal", Description: "Bœuf, Merguez, Agneau, Poulet avec légumes et sauce maison", Price: 27.90, Category: "Couscous", Image: "/images/menu/couscous-royal.png"},
	{ID: "couscous-boeuf", Name: "Couscous Bœuf", Description: "Bœuf mariné avec légumes et sauce maison", Price: 19.90, Category: "Couscous", Image: "/images/menu/couscous-boeuf.png"},
	{ID: "couscous-agneau", Name: "Couscous d'Agneau", Description: "Morceau d'agneau mariné avec légumes et sauce maison", Price: 20.90, Category: "Couscous", Image: "/images/menu/couscous-agneau.png"},
	{ID: "couscous-poulet", Name: "Couscous Poulet", Description: "Cuisse de poulet marinée avec légumes et sauce maison", Price: 16.90, Category: "Couscous", Image: "/images/menu/couscous-poulet.png"},
	{ID: "couscous-merguez", Name: "Couscous Merguez", Description: "Merguez avec légumes et sauce maison", Price: 18.90, Category: "Couscous", Image: "/images/menu/couscous-merguez.png"},
	{ID: "couscous-vegetarien", Name: "Couscous aux Légumes", Description: "Assortiment de légumes et sauce maison", Price: 14.90, Category: "Couscous", Image: "/images/menu/couscous-vegetarien.png", IsVegetarian: true},

	// Tajines
	{ID: "tajine-royal", Name: "Tajine Royal", Description: "Bœuf, Merguez, Agneau, Poulet avec légumes", Price: 30.90, Category: "Tajines", Image: "/images/menu/tajine-royal.png"},
	{ID: "tajine-boeuf", Name: "Tajine Bœuf", Description: "Bœuf ou viande hachée marinée avec légumes", Price: 20.90, Category: "Tajines", Image: "/images/menu/tajine-boeuf.png"},
	{ID: "tajine-agneau", Name: "Tajine d'Agneau", Description: "Agneau avec assortiment de légumes", Price: 21.90, Category: "Tajines", Image: "/images/menu/tajine-agneau.png"},
	{ID: "tajine-poulet", Name: "Tajine Poulet", Description: "Cuisse de poulet avec légumes", Price: 17.90, Category: "Tajines", Image: "/images/menu/tajine-poulet.png"},
	{ID: "tajine-merguez", Name: "Tajine Merguez", Description: "Merguez avec légumes", Price: 19.90, Category: "Tajines", Image: "/images/menu/tajine-merguez.png"},
	{ID: "tajine-vegetarien", Name: "Tajine aux Légumes", Description: "Assortiment de légumes", Price: 15.90, Category: "Tajines", Image: "/images/menu/tajine-vegetarien.png", IsVegetarian: true},

	// Grillades
	{ID: "poulet-tandoori", Name: "Poulet Tandoori", Description: "Poulet mariné et grillé", Price: 9.90, Category: "Grillades", Image: "/images/menu/poulet-tandoori.png", IsSpicy: true},
	{ID: "poulet-tikka", Name: "Poulet Tikka", Description: "Morceaux de poulet marinés et grillés", Price: 10.90, Category: "Grillades", Image: "/images/menu/poulet-tikka.png", IsSpicy: true},
	{ID: "sheek-kebab", Name: "Sheek Kebab", Description: "Brochettes de viande hachée", Price: 10.90, Category: "Grillades", Image: "/images/menu/sheek-kebab.png"},
	{ID: "merguez-epicees", Name: "Merguez", Description: "Merguez marinées aux épices maison", Price: 10.90, Category: "Grillades", Image: "/images/menu/merguez-epicees.png", IsSpicy: true},
	{ID: "chicken-wings", Name: "Chicken Wings", Description: "Ailes de poulet marinées et grillées", Price: 8.90, Category: "Grillades", Image: "/images/menu/chicken-wings.png"},
	{ID: "assortiment-grillades", Name: "Assortiment de Grillades", Description: "4 viandes grillées", Price: 19.90, Category: "Grillades", Image: "/images/menu/assortiment-grillades.png"},

	// Entrées
	{ID: "beignet-calamar", Name: "Beignets de Calamars", Description: "Calamars frits avec sauce", Price: 8.90, Category: "Entrées", Image: "/images/menu/beignet-calamar.png"},
	{ID: "beignet-oignon", Name: "Beignets d'Oignons", Description: "Rondelles d'oignons frites", Price: 6.90, Category: "Entrées", Image: "/images/menu/beignet-oignon.png", IsVegetarian: true},
	{ID: "beignet-poulet", Name: "Beignet de Poulet", Description: "Poulet frit avec sauce", Price: 8.90, Category: "Entrées", Image: "/images/menu/beignet-poulet.png"},
	{ID: "beignet-pomme-terre", Name: "Beignet de Pommes de Terre", Description: "Rondelles de pommes de terre frites", Price: 6.90, Category: "Entrées", Image: "/images/menu/beignet-pomme-terre.png", IsVegetarian: true},
	{ID: "beignet-aubergine", Name: "Beignet d'Aubergine", Description: "Rondelles d'aubergine frites", Price: 6.90, Category: "Entrées", Image: "/images/menu/beignet-aubergine.png", IsVegetarian: true},
	{ID: "beignet-poisson", Name: "Beignet de Poisson", Description: "Poisson frit avec sauce", Price: 10.90, Category: "Entrées", Image: "/images/menu/beignet-poisson.png"},
	{ID: "nem-poulet", Name: "Nems Poulet", Description: "Nems farcis au poulet", Price: 9.90, Category: "Entrées", Image: "/images/menu/nem-poulet.png"},
	{ID: "nem-boeuf", Name: "Nems Bœuf", Description: "Nems farcis au bœuf", Price: 9.90, Category: "Entrées", Image: "/images/menu/nem-boeuf.png"},
	{ID: "nem-crevettes", Name: "Nems Crevettes", Description: "Nems farcis aux crevettes", Price: 10.90, Category: "Entrées", Image: "/images/menu/nem-crevettes.png"},
	{ID: "nem-vegetarien", Name: "Nems aux Légumes", Description: "Nems farcis aux légumes", Price: 8.90, Category: "Entrées", Image: "/images/menu/nem-vegetarien.png", IsVegetarian: true},
	{ID: "samoussa-viande", Name: "Samoussa Viande", Description: "Samoussa farcis à la viande", Price: 6.90, Category: "Entrées", Image: "/images/menu/samoussa-viande.png"},
	{ID: "samoussa-vegetarien", Name: "Samoussa aux Légumes", Description: "Samoussa farcis aux légumes", Price: 6.90, Category: "Entrées", Image: "/images/menu/samoussa-vegetarien.png", IsVegetarian: true},
	{ID: "nuggets", Name: "Nuggets de Poulet", Description: "Nuggets de poulet croustillants", Price: 8.90, Category: "Entrées", Image: "/images/menu/nuggets.png"},

	// Salades
	{ID: "salade-vegetarienne", Name: "Salade aux Légumes", Description: "Salade, tomates, concombre, carottes, pommes de terre", Price: 8.90, Category: "Salades", Image: "/images/menu/salade-vegetarienne.png", IsVegetarian: true},
	{ID: "salade-poulet", Name: "Salade Poulet", Description: "Salade, tomates, concombre, carottes, poulet", Price: 10.90, Category: "Salades", Image: "/images/menu/salade-poulet.png"},
	{ID: "salade-crevettes", Name: "Salade Crevettes", Description: "Salade, tomates, concombre, carottes, crevettes", Price: 11.90, Category: "Salades", Image: "/images/menu/salade-crevettes.png"},

	// Accompagnements
	{ID: "frites", Name: "Frites Traditionnelles", Description: "Frites maison croustillantes", Price: 5.90, Category: "Accompagnements", Image: "/images/menu/frites.png", IsVegetarian: true},
	{ID: "nan-nature", Name: "Nan Nature", Description: "Pain nan nature", Price: 3.50, Category: "Accompagnements", Image: "/images/menu/nan-nature.png", IsVegetarian: true},
	{ID: "nan-fromage", Name: "Nan Fromage", Description: "Pain nan au fromage", Price: 3.50, Category: "Accompagnements", Image: "/images/menu/nan-fromage.png", IsVegetarian: true},
	{ID: "nan-ail", Name: "Nan Ail", Description: "Pain nan à l'ail", Price: 4.50, Category: "Accompagnements", Image: "/images/menu/nan-ail.png", IsVegetarian: true},

	// Desserts
	{
		ID: "glace-2-boules", Name: "Glace 2 Boules", Description: "Vanille, Chocolat, Café, Fraise, Citron",
		Price: 6.90, Category: "Desserts", Image: "/images/menu/glace-2-boules.png",
		Options: &ItemOptions{
			IsComposed:         true,
			RequiredSelections: 2,
			AvailableChoices: []Choice{
				{ID: "vanille", Name: "Vanille", Category: "glaces", Price: 3.45},
				{ID: "chocolat", Name: "Chocolat", Category: "glaces", Price: 3.45},
				{ID: "cafe", Name: "Café", Category: "glaces", Price: 3.45},
				{ID: "fraise", Name: "Fraise", Category: "glaces", Price: 3.45},
				{ID: "citron", Name: "Citron", Category: "glaces", Price: 3.45},
			},
		},
	},
	{
		ID: "sorbet-3-boules", Name: "Sorbet 3 Boules", Description: "Fraise, Citron, Mangue, Ananas",
		Price: 7.90, Category: "Desserts", Image: "/images/menu/sorbet-3-boules.png",
		Options: &ItemOptions{
			IsComposed:         true,
			RequiredSelections: 3,
			AvailableChoices: []Choice{
				{ID: "fraise", Name: "Fraise", Category: "sorbets", Price: 2.50},
				{ID: "citron", Name: "Citron", Category: "sorbets", Price: 2.50},
				{ID: "mangue", Name: "Mangue", Category: "sorbets", Price: 2.90},
				{ID: "ananas", Name: "Ananas", Category: "sorbets", Price: 2.90},
			},
		},
	},
	{ID: "tiramisu", Name: "Tiramisu", Description: "Tiramisu maison", Price: 8.90, Category: "Desserts", Image: "/images/menu/tiramisu.png"},
	{ID: "baklawa", Name: "Baklawa", Description: "Pâtisserie orientale au miel", Price: 8.90, Category: "Desserts", Image: "/images/menu/baklawa.png"},
	{ID: "patisserie-orientale", Name: "Pâtisserie Orientale", Description: "Assortiment de pâtisseries", Price: 8.90, Category: "Desserts", Image: "/images/menu/patisserie-orientale.png"},
	{ID: "salade-fruits", Name: "Salade de Fruits", Description: "Fruits frais de saison", Price: 7.90, Category: "Desserts", Image: "/images/menu/salade-fruits.png"},

	// Boissons
	{
		ID: "eau", Name: "Eau Minérale", Description: "50cl",
		Price: 3.90, Category: "Boissons", Image: "/images/menu/eau.png",
		Options: &ItemOptions{
			IsComposed:         true,
			RequiredSelections: 1,
			AvailableChoices: []Choice{
				{ID: "vittel", Name: "Vittel", Category: "eau", Price: 3.90},
				{ID: "san-pellegrino", Name: "San Pellegrino", Category: "eau", Price: 3.90},
			},
		},
	},
	{
		ID: "soda", Name: "Soda", Description: "33cl",
		Price: 3.90, Category: "Boissons", Image: "/images/menu/soda.png",
		Options: &ItemOptions{
			IsComposed:         true,
			RequiredSelections: 1,
			AvailableChoices: []Choice{
				{ID: "coca-zero", Name: "Coca Zero", Category: "sodas", Price: 3.90},
				{ID: "coca", Name: "Coca", Category: "sodas", Price: 3.90},
				{ID: "lipton", Name: "Lipton", Category: "sodas", Price: 3.90},
				{ID: "orangina", Name: "Orangina", Category: "sodas", Price: 3.90},
				{ID: "fanta", Name: "Fanta", Category: "sodas", Price: 3.90},
			},
		},
	},
	{ID: "the-menthe", Name: "Thé à la Menthe", Description: "Thé à la menthe traditionnel", Price: 3.50, Category: "Boissons", Image: "/images/menu/the-menthe.png"},
	{ID: "the-glace", Name: "Thé Glacé Maison", Description: "Thé glacé fait maison", Price: 6.00, Category: "Boissons", Image: "/images/menu/the-glace.png"},
}

// FindMenuItem looks up a catalog item by id.
func FindMenuItem(id string) (MenuItem, bool) {
	for _, item := range MenuItems {
		if item.ID == id {
			return item, true
		}
	}
	return MenuItem{}, false
}
