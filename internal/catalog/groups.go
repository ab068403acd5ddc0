package catalog

// heavyFamilies are the dense resinous families that need a fuller material
// count before a blend holds together on skin.
var heavyFamilies = map[string]struct{}{
	"oriental": {},
	"woody":    {},
	"smoky":    {},
	"leather":  {},
	"incense":  {},
	"gourmand": {},
	"spicy":    {},
}

// HeavyFamily reports whether the family belongs to the dense set that is
// held to a higher minimum ingredient count.
func HeavyFamily(name string) bool {
	_, ok := heavyFamilies[normalizeFamily(name)]
	return ok
}

// duplicateGroups clusters materials that fill the same functional slot in a
// blend. Member order matters: the first entry is the primary of its group
// and keeps its full weight when an overlap is detected.
var duplicateGroups = map[string][]string{
	"white musk": {"Galaxolide", "Habanolide", "Ethylene Brassylate", "Velvione"},
	"vetiver":    {"Vetiver Haiti", "Vetiveryl Acetate", "Vetiver Java Smoked"},
	"amber":      {"Ambroxan", "Amber Accord", "Cedramber"},
	"vanilla":    {"Vanilla Bourbon", "Vanilla Absolute", "Vanillin"},
	"benzoin":    {"Benzoin Siam Resinoid", "Benzoin Laos"},
	"olibanum":   {"Olibanum Resinoid", "Frankincense CO2", "Olibanum Oil"},
	"petitgrain": {"Petitgrain sur Fleurs", "Petitgrain Paraguay"},
	"myrrh":      {"Myrrh Resinoid", "Myrrh Bitter"},
}

// DuplicateGroups returns the functional overlap table keyed by group name.
// The returned map shares no storage with the catalog's own copy.
func DuplicateGroups() map[string][]string {
	out := make(map[string][]string, len(duplicateGroups))
	for group, members := range duplicateGroups {
		cp := make([]string, len(members))
		copy(cp, members)
		out[group] = cp
	}
	return out
}

// diffuserPool names the cross-family backbone materials used to open up a
// blend that came out too sparse. Named diffusive woods precede the plain
// musks so the musks only land when nothing more characterful is free.
var diffuserPool = []string{
	"Iso E Super",
	"Ambroxan",
	"Cedramber",
	"Galaxolide",
	"Habanolide",
}

// DiffuserPool returns the ordered names of the structural diffusers.
func DiffuserPool() []string {
	cp := make([]string, len(diffuserPool))
	copy(cp, diffuserPool)
	return cp
}
