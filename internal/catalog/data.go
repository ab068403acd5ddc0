package catalog

import "sync"

var (
	builtinOnce sync.Once
	builtin     *Library
)

// Builtin returns the compiled-in material library. The library is validated
// once on first use; a validation failure here is a programming error.
func Builtin() *Library {
	builtinOnce.Do(func() {
		builtin = NewLibrary(builtinFamilies)
		if err := builtin.Validate(); err != nil {
			panic(err)
		}
	})
	return builtin
}

var builtinFamilies = map[string]map[Layer][]Ingredient{
	"oriental": {
		LayerTop: {
			{Name: "Elemi Gum", Percent: PercentRange{2, 4}, Supplier: "Robertet", Strength: 4, Cost: 2, Persistence: 4, Dominance: 3, BlendsWith: []string{"incense", "citrus", "spicy"}, Role: RoleLift},
			{Name: "Saffron Absolute", Percent: PercentRange{0.5, 1.5}, Supplier: "Givaudan", Strength: 7, Cost: 5, Persistence: 5, Dominance: 6, BlendsWith: []string{"leather", "woody", "spicy"}, Role: RoleCharacter},
			{Name: "Davana Oil", Percent: PercentRange{1, 2}, Supplier: "Payan Bertrand", Strength: 6, Cost: 4, Persistence: 4, Dominance: 5, BlendsWith: []string{"gourmand", "floral"}, Role: RoleCharacter},
		},
		LayerHeart: {
			{Name: "Labdanum Resinoid", Percent: PercentRange{3, 6}, Supplier: "Biolandes", Strength: 8, Cost: 3, Persistence: 9, Dominance: 8, BlendsWith: []string{"woody", "incense", "leather"}, Role: RoleHero},
			{Name: "Rose de Mai Absolute", Percent: PercentRange{2, 4}, Supplier: "Robertet", Strength: 7, Cost: 5, Persistence: 6, Dominance: 5, BlendsWith: []string{"floral", "spicy", "gourmand"}, Role: RoleCharacter},
			{Name: "Benzoin Siam Resinoid", Percent: PercentRange{3, 5}, Supplier: "Biolandes", Strength: 6, Cost: 2, Persistence: 8, Dominance: 5, BlendsWith: []string{"gourmand", "incense", "woody"}, Role: RoleBackbone},
			{Name: "Orris Concrete", Percent: PercentRange{1, 2}, Supplier: "Firmenich", Strength: 5, Cost: 5, Persistence: 7, Dominance: 4, BlendsWith: []string{"floral", "woody"}, Role: RoleCharacter},
		},
		LayerBase: {
			{Name: "Oud Assam", Percent: PercentRange{2, 5}, Supplier: "Ensar Direct", Strength: 10, Cost: 5, Persistence: 10, Dominance: 9, BlendsWith: []string{"woody", "leather", "smoky"}, Role: RoleHero},
			{Name: "Amber Accord", Percent: PercentRange{4, 8}, Supplier: "House Base", Strength: 7, Cost: 2, Persistence: 9, Dominance: 6, BlendsWith: []string{"gourmand", "woody", "spicy"}, Role: RoleBackbone},
			{Name: "Vanilla Absolute", Percent: PercentRange{2, 4}, Supplier: "Eurovanille", Strength: 6, Cost: 4, Persistence: 8, Dominance: 5, BlendsWith: []string{"gourmand", "floral"}, Role: RoleBackbone},
			{Name: "Myrrh Resinoid", Percent: PercentRange{2, 4}, Supplier: "Biolandes", Strength: 6, Cost: 3, Persistence: 9, Dominance: 6, BlendsWith: []string{"incense", "smoky", "woody"}, Role: RoleBackbone},
			{Name: "Ambroxan", Percent: PercentRange{2, 6}, Supplier: "Kao", Strength: 5, Cost: 3, Persistence: 9, Dominance: 4, BlendsWith: []string{"woody", "musk", "aquatic"}, Role: RoleBackbone},
		},
	},
	"woody": {
		LayerTop: {
			{Name: "Cypress Oil", Percent: PercentRange{2, 4}, Supplier: "Robertet", Strength: 4, Cost: 2, Persistence: 4, Dominance: 3, BlendsWith: []string{"green", "citrus", "fresh"}, Role: RoleLift},
			{Name: "Juniper Berry Oil", Percent: PercentRange{1, 3}, Supplier: "Albert Vieille", Strength: 4, Cost: 2, Persistence: 3, Dominance: 3, BlendsWith: []string{"fresh", "citrus", "spicy"}, Role: RoleLift},
			{Name: "Clearwood", Percent: PercentRange{2, 5}, Supplier: "Firmenich", Strength: 5, Cost: 3, Persistence: 6, Dominance: 4, BlendsWith: []string{"musk", "oriental"}, Role: RoleCharacter},
		},
		LayerHeart: {
			{Name: "Cedarwood Virginia", Percent: PercentRange{4, 8}, Supplier: "Texarome", Strength: 5, Cost: 1, Persistence: 7, Dominance: 5, BlendsWith: []string{"leather", "oriental", "musk"}, Role: RoleBackbone},
			{Name: "Vetiver Haiti", Percent: PercentRange{3, 6}, Supplier: "Unigem", Strength: 7, Cost: 3, Persistence: 9, Dominance: 7, BlendsWith: []string{"citrus", "smoky", "green"}, Role: RoleHero},
			{Name: "Guaiacwood Oil", Percent: PercentRange{2, 4}, Supplier: "Robertet", Strength: 5, Cost: 2, Persistence: 8, Dominance: 5, BlendsWith: []string{"smoky", "oriental", "floral"}, Role: RoleBackbone},
			{Name: "Cypriol Oil", Percent: PercentRange{1, 2}, Supplier: "Ultra International", Strength: 7, Cost: 2, Persistence: 8, Dominance: 7, BlendsWith: []string{"leather", "smoky", "oriental"}, Role: RoleCharacter},
		},
		LayerBase: {
			{Name: "Sandalwood Mysore", Percent: PercentRange{3, 7}, Supplier: "Quintis", Strength: 6, Cost: 5, Persistence: 9, Dominance: 6, BlendsWith: []string{"floral", "oriental", "gourmand"}, Role: RoleHero},
			{Name: "Iso E Super", Percent: PercentRange{5, 10}, Supplier: "IFF", RegulatoryLimit: 21.4, Strength: 3, Cost: 1, Persistence: 8, Dominance: 3, BlendsWith: []string{"musk", "floral", "aquatic"}, Role: RoleBackbone},
			{Name: "Vetiveryl Acetate", Percent: PercentRange{3, 6}, Supplier: "Givaudan", Strength: 5, Cost: 3, Persistence: 8, Dominance: 4, BlendsWith: []string{"citrus", "floral", "fresh"}, Role: RoleBackbone},
			{Name: "Patchouli Heart", Percent: PercentRange{3, 6}, Supplier: "Firmenich", Strength: 7, Cost: 3, Persistence: 9, Dominance: 7, BlendsWith: []string{"oriental", "gourmand", "leather"}, Role: RoleBackbone},
			{Name: "Oakmoss Absolute", Percent: PercentRange{0.3, 0.8}, Supplier: "Biolandes", RegulatoryLimit: 0.1, Strength: 8, Cost: 4, Persistence: 9, Dominance: 7, BlendsWith: []string{"green", "leather", "citrus"}, Role: RoleCharacter},
		},
	},
	"spicy": {
		LayerTop: {
			{Name: "Pink Pepper Oil", Percent: PercentRange{1, 3}, Supplier: "Citrus and Allied", Strength: 5, Cost: 2, Persistence: 3, Dominance: 4, BlendsWith: []string{"citrus", "floral", "woody"}, Role: RoleLift},
			{Name: "Ginger CO2", Percent: PercentRange{1, 2}, Supplier: "Flavex", Strength: 6, Cost: 3, Persistence: 3, Dominance: 5, BlendsWith: []string{"citrus", "gourmand", "fresh"}, Role: RoleLift},
			{Name: "Cardamom Seed Oil", Percent: PercentRange{1, 2}, Supplier: "Givaudan", Strength: 6, Cost: 3, Persistence: 4, Dominance: 5, BlendsWith: []string{"oriental", "gourmand", "fresh"}, Role: RoleCharacter},
		},
		LayerHeart: {
			{Name: "Black Pepper CO2", Percent: PercentRange{1, 3}, Supplier: "Flavex", Strength: 6, Cost: 3, Persistence: 5, Dominance: 6, BlendsWith: []string{"woody", "citrus", "oriental"}, Role: RoleHero},
			{Name: "Cinnamon Bark Oil", Percent: PercentRange{0.5, 1.5}, Supplier: "Symrise", RegulatoryLimit: 0.6, Strength: 8, Cost: 3, Persistence: 6, Dominance: 8, BlendsWith: []string{"gourmand", "oriental"}, Role: RoleCharacter},
			{Name: "Clove Bud Oil", Percent: PercentRange{0.5, 1}, Supplier: "Robertet", RegulatoryLimit: 0.5, Strength: 8, Cost: 2, Persistence: 7, Dominance: 8, BlendsWith: []string{"floral", "oriental", "gourmand"}, Role: RoleCharacter},
			{Name: "Nutmeg Oil", Percent: PercentRange{1, 2}, Supplier: "Berje", Strength: 5, Cost: 2, Persistence: 5, Dominance: 4, BlendsWith: []string{"woody", "gourmand"}, Role: RoleBackbone},
		},
		LayerBase: {
			{Name: "Tonka Bean Absolute", Percent: PercentRange{2, 5}, Supplier: "Mane", Strength: 6, Cost: 3, Persistence: 8, Dominance: 5, BlendsWith: []string{"gourmand", "oriental", "woody"}, Role: RoleBackbone},
			{Name: "Opoponax Resinoid", Percent: PercentRange{2, 4}, Supplier: "Biolandes", Strength: 6, Cost: 2, Persistence: 8, Dominance: 5, BlendsWith: []string{"oriental", "incense"}, Role: RoleBackbone},
			{Name: "Benzoin Laos", Percent: PercentRange{2, 4}, Supplier: "Nam Phou", Strength: 6, Cost: 2, Persistence: 8, Dominance: 4, BlendsWith: []string{"gourmand", "oriental"}, Role: RoleCharacter},
		},
	},
	"gourmand": {
		LayerTop: {
			{Name: "Bitter Almond Accord", Percent: PercentRange{1, 2}, Supplier: "House Base", Strength: 6, Cost: 1, Persistence: 3, Dominance: 5, BlendsWith: []string{"floral", "spicy"}, Role: RoleLift},
			{Name: "Coffee CO2", Percent: PercentRange{0.5, 1.5}, Supplier: "Flavex", Strength: 8, Cost: 3, Persistence: 5, Dominance: 7, BlendsWith: []string{"oriental", "woody"}, Role: RoleCharacter},
		},
		LayerHeart: {
			{Name: "Immortelle Absolute", Percent: PercentRange{1, 3}, Supplier: "Corsica Essenze", Strength: 8, Cost: 4, Persistence: 8, Dominance: 7, BlendsWith: []string{"spicy", "oriental", "woody"}, Role: RoleHero},
			{Name: "Cocoa Absolute", Percent: PercentRange{1, 2}, Supplier: "Mane", Strength: 7, Cost: 3, Persistence: 6, Dominance: 6, BlendsWith: []string{"oriental", "spicy"}, Role: RoleCharacter},
			{Name: "Ethyl Maltol", Percent: PercentRange{0.5, 2}, Supplier: "Symrise", Strength: 8, Cost: 1, Persistence: 6, Dominance: 7, BlendsWith: []string{"floral", "musk"}, Role: RoleCharacter},
		},
		LayerBase: {
			{Name: "Vanilla Bourbon", Percent: PercentRange{3, 6}, Supplier: "Eurovanille", Strength: 7, Cost: 4, Persistence: 9, Dominance: 6, BlendsWith: []string{"oriental", "floral", "spicy"}, Role: RoleHero},
			{Name: "Vanillin", Percent: PercentRange{2, 4}, Supplier: "Solvay", Strength: 7, Cost: 1, Persistence: 8, Dominance: 5, BlendsWith: []string{"musk", "oriental"}, Role: RoleBackbone},
			{Name: "Coumarin", Percent: PercentRange{2, 5}, Supplier: "Rhodia", RegulatoryLimit: 1.6, Strength: 6, Cost: 1, Persistence: 8, Dominance: 4, BlendsWith: []string{"woody", "spicy", "fresh"}, Role: RoleBackbone},
			{Name: "Praline Accord", Percent: PercentRange{2, 4}, Supplier: "House Base", Strength: 7, Cost: 2, Persistence: 7, Dominance: 6, BlendsWith: []string{"musk", "oriental"}, Role: RoleBackbone},
		},
	},
	"fresh": {
		LayerTop: {
			{Name: "Lavandin Grosso", Percent: PercentRange{2, 4}, Supplier: "Barbier", Strength: 4, Cost: 1, Persistence: 3, Dominance: 3, BlendsWith: []string{"citrus", "green", "woody"}, Role: RoleLift},
			{Name: "Rosemary Cineole", Percent: PercentRange{1, 3}, Supplier: "Lluch Essence", Strength: 4, Cost: 1, Persistence: 3, Dominance: 3, BlendsWith: []string{"citrus", "green"}, Role: RoleLift},
			{Name: "Basil Grand Vert", Percent: PercentRange{0.5, 1.5}, Supplier: "Robertet", Strength: 5, Cost: 2, Persistence: 3, Dominance: 4, BlendsWith: []string{"citrus", "green", "aquatic"}, Role: RoleCharacter},
		},
		LayerHeart: {
			{Name: "Lavender Barreme", Percent: PercentRange{2, 4}, Supplier: "Barbier", Strength: 5, Cost: 2, Persistence: 5, Dominance: 4, BlendsWith: []string{"citrus", "woody", "aquatic"}, Role: RoleHero},
			{Name: "Clary Sage Oil", Percent: PercentRange{1, 2}, Supplier: "Albert Vieille", Strength: 5, Cost: 2, Persistence: 5, Dominance: 4, BlendsWith: []string{"citrus", "green"}, Role: RoleCharacter},
			{Name: "Petitgrain Paraguay", Percent: PercentRange{2, 4}, Supplier: "Citrus and Allied", Strength: 4, Cost: 1, Persistence: 4, Dominance: 3, BlendsWith: []string{"citrus", "floral"}, Role: RoleBackbone},
		},
		LayerBase: {
			{Name: "Cedramber", Percent: PercentRange{2, 5}, Supplier: "IFF", Strength: 3, Cost: 1, Persistence: 7, Dominance: 3, BlendsWith: []string{"woody", "musk", "aquatic"}, Role: RoleBackbone},
			{Name: "Ambrette Seed Tincture", Percent: PercentRange{1, 3}, Supplier: "Hermitage", Strength: 3, Cost: 3, Persistence: 7, Dominance: 2, BlendsWith: []string{"musk", "floral"}, Role: RoleBackbone},
		},
	},
	"citrus": {
		LayerTop: {
			{Name: "Bergamot Calabria", Percent: PercentRange{3, 6}, Supplier: "Capua", Strength: 4, Cost: 2, Persistence: 2, Dominance: 3, BlendsWith: []string{"fresh", "floral", "aquatic"}, Role: RoleLift},
			{Name: "Sicilian Lemon Oil", Percent: PercentRange{2, 5}, Supplier: "Capua", Strength: 4, Cost: 1, Persistence: 2, Dominance: 3, BlendsWith: []string{"fresh", "green", "aquatic"}, Role: RoleLift},
			{Name: "Sweet Orange Brazil", Percent: PercentRange{2, 4}, Supplier: "Citrosuco", Strength: 3, Cost: 1, Persistence: 2, Dominance: 2, BlendsWith: []string{"gourmand", "floral"}, Role: RoleLift},
			{Name: "Yuzu Peel Oil", Percent: PercentRange{1, 2}, Supplier: "Takasago", Strength: 5, Cost: 3, Persistence: 2, Dominance: 3, BlendsWith: []string{"aquatic", "fresh", "green"}, Role: RoleCharacter},
		},
		LayerHeart: {
			{Name: "Neroli Tunisia", Percent: PercentRange{1, 3}, Supplier: "Albert Vieille", Strength: 5, Cost: 3, Persistence: 5, Dominance: 4, BlendsWith: []string{"floral", "fresh", "aquatic"}, Role: RoleHero},
			{Name: "Petitgrain sur Fleurs", Percent: PercentRange{2, 4}, Supplier: "Robertet", Strength: 4, Cost: 2, Persistence: 4, Dominance: 3, BlendsWith: []string{"floral", "fresh"}, Role: RoleBackbone},
			{Name: "Orange Flower Absolute", Percent: PercentRange{0.5, 1.5}, Supplier: "Robertet", Strength: 6, Cost: 3, Persistence: 5, Dominance: 4, BlendsWith: []string{"floral", "musk"}, Role: RoleCharacter},
		},
		LayerBase: {
			{Name: "Methyl Pamplemousse", Percent: PercentRange{1, 3}, Supplier: "Givaudan", Strength: 4, Cost: 1, Persistence: 5, Dominance: 3, BlendsWith: []string{"fresh", "aquatic"}, Role: RoleBackbone},
			{Name: "Pomelo Accord", Percent: PercentRange{1, 3}, Supplier: "House Base", Strength: 4, Cost: 1, Persistence: 5, Dominance: 3, BlendsWith: []string{"fresh", "musk"}, Role: RoleBackbone},
		},
	},
	"aquatic": {
		LayerTop: {
			{Name: "Calone 1951", Percent: PercentRange{0.5, 2}, Supplier: "Pfizer Heritage", Strength: 7, Cost: 2, Persistence: 5, Dominance: 7, BlendsWith: []string{"fresh", "citrus", "musk"}, Role: RoleCharacter},
			{Name: "Melonal", Percent: PercentRange{0.3, 1}, Supplier: "Givaudan", Strength: 6, Cost: 1, Persistence: 2, Dominance: 4, BlendsWith: []string{"fresh", "citrus"}, Role: RoleLift},
			{Name: "Sea Breeze Accord", Percent: PercentRange{1, 3}, Supplier: "House Base", Strength: 5, Cost: 1, Persistence: 3, Dominance: 4, BlendsWith: []string{"fresh", "citrus", "green"}, Role: RoleLift},
		},
		LayerHeart: {
			{Name: "Water Lily Accord", Percent: PercentRange{1, 3}, Supplier: "House Base", Strength: 5, Cost: 1, Persistence: 5, Dominance: 4, BlendsWith: []string{"floral", "fresh"}, Role: RoleHero},
			{Name: "Floralozone", Percent: PercentRange{0.5, 2}, Supplier: "IFF", Strength: 6, Cost: 2, Persistence: 5, Dominance: 5, BlendsWith: []string{"floral", "fresh", "citrus"}, Role: RoleCharacter},
			{Name: "Helional", Percent: PercentRange{1, 3}, Supplier: "IFF", Strength: 5, Cost: 2, Persistence: 5, Dominance: 4, BlendsWith: []string{"floral", "green"}, Role: RoleBackbone},
		},
		LayerBase: {
			{Name: "Driftwood Accord", Percent: PercentRange{2, 4}, Supplier: "House Base", Strength: 4, Cost: 1, Persistence: 6, Dominance: 3, BlendsWith: []string{"woody", "musk"}, Role: RoleBackbone},
			{Name: "Grey Salt Accord", Percent: PercentRange{1, 3}, Supplier: "House Base", Strength: 4, Cost: 1, Persistence: 6, Dominance: 3, BlendsWith: []string{"musk", "woody"}, Role: RoleCharacter},
		},
	},
	"floral": {
		LayerTop: {
			{Name: "Freesia Accord", Percent: PercentRange{1, 3}, Supplier: "House Base", Strength: 4, Cost: 1, Persistence: 3, Dominance: 3, BlendsWith: []string{"citrus", "fresh", "green"}, Role: RoleLift},
			{Name: "Violet Leaf Absolute", Percent: PercentRange{0.3, 1}, Supplier: "Robertet", Strength: 7, Cost: 4, Persistence: 4, Dominance: 6, BlendsWith: []string{"green", "woody"}, Role: RoleCharacter},
		},
		LayerHeart: {
			{Name: "Rose Centifolia Absolute", Percent: PercentRange{2, 4}, Supplier: "Robertet", Strength: 7, Cost: 5, Persistence: 7, Dominance: 6, BlendsWith: []string{"oriental", "spicy", "gourmand"}, Role: RoleHero},
			{Name: "Jasmine Sambac Absolute", Percent: PercentRange{1, 3}, Supplier: "Jasmine Concrete", Strength: 8, Cost: 5, Persistence: 7, Dominance: 7, BlendsWith: []string{"citrus", "oriental", "green"}, Role: RoleCharacter},
			{Name: "Ylang Extra", Percent: PercentRange{1, 2}, Supplier: "Man Fils", Strength: 7, Cost: 3, Persistence: 6, Dominance: 7, BlendsWith: []string{"citrus", "gourmand", "aquatic"}, Role: RoleCharacter},
			{Name: "Heliotropin", Percent: PercentRange{1, 3}, Supplier: "Symrise", Strength: 5, Cost: 1, Persistence: 6, Dominance: 4, BlendsWith: []string{"gourmand", "musk"}, Role: RoleBackbone},
		},
		LayerBase: {
			{Name: "Orris Butter", Percent: PercentRange{1, 2}, Supplier: "Phyto Lyon", Strength: 6, Cost: 5, Persistence: 8, Dominance: 5, BlendsWith: []string{"woody", "musk"}, Role: RoleBackbone},
			{Name: "Benzyl Salicylate", Percent: PercentRange{3, 6}, Supplier: "Symrise", RegulatoryLimit: 1.4, Strength: 3, Cost: 1, Persistence: 6, Dominance: 3, BlendsWith: []string{"musk", "aquatic"}, Role: RoleBackbone},
		},
	},
	"musk": {
		LayerTop: {
			{Name: "Aldehydic Sparkle Accord", Percent: PercentRange{0.5, 1.5}, Supplier: "House Base", Strength: 5, Cost: 1, Persistence: 3, Dominance: 4, BlendsWith: []string{"floral", "citrus", "fresh"}, Role: RoleLift},
		},
		LayerHeart: {
			{Name: "Velvione", Percent: PercentRange{2, 4}, Supplier: "Givaudan", Strength: 4, Cost: 3, Persistence: 7, Dominance: 3, BlendsWith: []string{"floral", "fresh", "aquatic"}, Role: RoleCharacter},
		},
		LayerBase: {
			{Name: "Galaxolide", Percent: PercentRange{4, 8}, Supplier: "IFF", Strength: 3, Cost: 1, Persistence: 8, Dominance: 3, BlendsWith: []string{"floral", "fresh", "aquatic"}, Role: RoleBackbone},
			{Name: "Habanolide", Percent: PercentRange{3, 6}, Supplier: "Firmenich", Strength: 3, Cost: 2, Persistence: 8, Dominance: 2, BlendsWith: []string{"fresh", "citrus", "aquatic"}, Role: RoleBackbone},
			{Name: "Ethylene Brassylate", Percent: PercentRange{4, 8}, Supplier: "Symrise", Strength: 2, Cost: 1, Persistence: 8, Dominance: 2, BlendsWith: []string{"floral", "gourmand"}, Role: RoleBackbone},
			{Name: "Muscenone", Percent: PercentRange{1, 3}, Supplier: "Firmenich", Strength: 5, Cost: 4, Persistence: 9, Dominance: 4, BlendsWith: []string{"floral", "woody"}, Role: RoleCharacter},
		},
	},
	"smoky": {
		LayerTop: {
			{Name: "Cade Oil Rectified", Percent: PercentRange{0.3, 1}, Supplier: "Biolandes", Strength: 8, Cost: 2, Persistence: 6, Dominance: 8, BlendsWith: []string{"leather", "woody"}, Role: RoleCharacter},
		},
		LayerHeart: {
			{Name: "Lapsang Souchong Accord", Percent: PercentRange{1, 2}, Supplier: "House Base", Strength: 7, Cost: 1, Persistence: 6, Dominance: 7, BlendsWith: []string{"leather", "woody", "oriental"}, Role: RoleCharacter},
			{Name: "Choya Loban", Percent: PercentRange{0.5, 1.5}, Supplier: "Hermitage", Strength: 8, Cost: 3, Persistence: 8, Dominance: 7, BlendsWith: []string{"incense", "oriental"}, Role: RoleBackbone},
		},
		LayerBase: {
			{Name: "Birch Tar Rectified", Percent: PercentRange{0.3, 1}, Supplier: "Aetos", RegulatoryLimit: 0.5, Strength: 9, Cost: 2, Persistence: 9, Dominance: 8, BlendsWith: []string{"leather", "woody"}, Role: RoleBackbone},
			{Name: "Vetiver Java Smoked", Percent: PercentRange{2, 4}, Supplier: "Van Aroma", Strength: 7, Cost: 3, Persistence: 9, Dominance: 7, BlendsWith: []string{"woody", "leather"}, Role: RoleCharacter},
		},
	},
	"leather": {
		LayerTop: {
			{Name: "Saffron Leather Accord", Percent: PercentRange{0.5, 1.5}, Supplier: "House Base", Strength: 7, Cost: 2, Persistence: 5, Dominance: 6, BlendsWith: []string{"oriental", "spicy"}, Role: RoleCharacter},
		},
		LayerHeart: {
			{Name: "Suederal", Percent: PercentRange{0.5, 2}, Supplier: "IFF", Strength: 7, Cost: 2, Persistence: 7, Dominance: 7, BlendsWith: []string{"woody", "oriental"}, Role: RoleCharacter},
			{Name: "Isobutyl Quinoline", Percent: PercentRange{0.2, 0.8}, Supplier: "Symrise", Strength: 9, Cost: 2, Persistence: 8, Dominance: 9, BlendsWith: []string{"green", "woody", "oriental"}, Role: RoleCharacter},
		},
		LayerBase: {
			{Name: "Castoreum Absolute", Percent: PercentRange{0.5, 1.5}, Supplier: "Hermitage", Strength: 8, Cost: 4, Persistence: 9, Dominance: 8, BlendsWith: []string{"oriental", "smoky"}, Role: RoleHero},
			{Name: "Leather Birch Accord", Percent: PercentRange{1, 3}, Supplier: "House Base", Strength: 7, Cost: 2, Persistence: 8, Dominance: 7, BlendsWith: []string{"woody", "smoky"}, Role: RoleBackbone},
		},
	},
	"incense": {
		LayerTop: {
			{Name: "Olibanum Oil", Percent: PercentRange{1, 3}, Supplier: "Albert Vieille", Strength: 5, Cost: 3, Persistence: 4, Dominance: 4, BlendsWith: []string{"citrus", "spicy", "oriental"}, Role: RoleLift},
		},
		LayerHeart: {
			{Name: "Olibanum Resinoid", Percent: PercentRange{2, 4}, Supplier: "Biolandes", Strength: 6, Cost: 3, Persistence: 8, Dominance: 6, BlendsWith: []string{"oriental", "woody", "smoky"}, Role: RoleHero},
			{Name: "Styrax Resinoid", Percent: PercentRange{1, 2}, Supplier: "Biolandes", Strength: 7, Cost: 2, Persistence: 8, Dominance: 6, BlendsWith: []string{"leather", "oriental"}, Role: RoleBackbone},
		},
		LayerBase: {
			{Name: "Frankincense CO2", Percent: PercentRange{2, 4}, Supplier: "Flavex", Strength: 6, Cost: 4, Persistence: 8, Dominance: 5, BlendsWith: []string{"oriental", "woody"}, Role: RoleBackbone},
			{Name: "Myrrh Bitter", Percent: PercentRange{1, 3}, Supplier: "Hermitage", Strength: 7, Cost: 3, Persistence: 9, Dominance: 6, BlendsWith: []string{"oriental", "smoky"}, Role: RoleCharacter},
		},
	},
	"green": {
		LayerTop: {
			{Name: "Galbanum Oil", Percent: PercentRange{0.5, 1.5}, Supplier: "Robertet", Strength: 8, Cost: 3, Persistence: 4, Dominance: 8, BlendsWith: []string{"floral", "fresh", "citrus"}, Role: RoleCharacter},
			{Name: "Cis-3-Hexenol", Percent: PercentRange{0.1, 0.5}, Supplier: "Zeon", Strength: 7, Cost: 1, Persistence: 1, Dominance: 4, BlendsWith: []string{"fresh", "citrus"}, Role: RoleLift},
		},
		LayerHeart: {
			{Name: "Fig Leaf Accord", Percent: PercentRange{1, 3}, Supplier: "House Base", Strength: 5, Cost: 1, Persistence: 5, Dominance: 4, BlendsWith: []string{"woody", "fresh"}, Role: RoleCharacter},
			{Name: "Tomato Leaf Accord", Percent: PercentRange{0.5, 1.5}, Supplier: "House Base", Strength: 6, Cost: 1, Persistence: 4, Dominance: 6, BlendsWith: []string{"citrus", "fresh"}, Role: RoleCharacter},
		},
		LayerBase: {
			{Name: "Fir Balsam Absolute", Percent: PercentRange{1, 3}, Supplier: "Hermitage", Strength: 6, Cost: 3, Persistence: 7, Dominance: 5, BlendsWith: []string{"woody", "incense"}, Role: RoleBackbone},
		},
	},
}
