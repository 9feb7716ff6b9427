package translator

// Field name mappings from the catalog's English schema to the Spanish
// schema used everywhere else in this service.
var fieldNames = map[string]string{
	"name":       "nombre",
	"height":     "altura",
	"mass":       "masa",
	"hair_color": "colorCabello",
	"skin_color": "colorPiel",
	"eye_color":  "colorOjos",
	"birth_year": "anioNacimiento",
	"gender":     "genero",
	"homeworld":  "planetaNatal",
	"films":      "peliculas",
	"species":    "especies",
	"vehicles":   "vehiculos",
	"starships":  "navesEspaciales",
	"created":    "creado",
	"edited":     "editado",
	"url":        "url",
}

// Value synonyms. Lookup is case-insensitive; the replacement is always
// the canonical Spanish form. Covers gender terms, the catalog's
// sentinel values and the descriptive terms it actually emits.
var valueSynonyms = map[string]string{
	// Gender
	"male":          "masculino",
	"female":        "femenino",
	"hermaphrodite": "hermafrodita",

	// Sentinels
	"unknown": "desconocido",
	"none":    "ninguno",
	"n/a":     "no aplica",

	// Descriptive terms (hair, skin, eyes)
	"blond":  "rubio",
	"brown":  "castaño",
	"black":  "negro",
	"white":  "blanco",
	"blue":   "azul",
	"green":  "verde",
	"yellow": "amarillo",
	"red":    "rojo",
	"fair":   "clara",
	"light":  "clara",
	"grey":   "gris",
}
