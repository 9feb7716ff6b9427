// Package domain contains the record vocabulary shared by the handlers
// and the store: the Spanish field names, the valid gender values and the
// declared field type sets.
package domain

// Field names of a persisted personaje record.
const (
	FieldID              = "id"
	FieldNombre          = "nombre"
	FieldAltura          = "altura"
	FieldMasa            = "masa"
	FieldColorCabello    = "colorCabello"
	FieldColorPiel       = "colorPiel"
	FieldColorOjos       = "colorOjos"
	FieldAnioNacimiento  = "anioNacimiento"
	FieldGenero          = "genero"
	FieldPlanetaNatal    = "planetaNatal"
	FieldPeliculas       = "peliculas"
	FieldEspecies        = "especies"
	FieldVehiculos       = "vehiculos"
	FieldNavesEspaciales = "navesEspaciales"
	FieldCreado          = "creado"
	FieldEditado         = "editado"
	FieldURL             = "url"
)

// TimeFormat is the fixed ISO-8601 layout stamped on creado/editado.
// It sorts lexicographically, which the list ordering relies on.
const TimeFormat = "2006-01-02T15:04:05.000Z"

// ValidGenders is the closed set accepted for genero (after lower-casing).
var ValidGenders = map[string]bool{
	"masculino":    true,
	"femenino":     true,
	"hermafrodita": true,
	"ninguno":      true,
	"no aplica":    true,
}

// StringFields are the fields that, when present, must be strings.
var StringFields = []string{
	FieldNombre,
	FieldAltura,
	FieldMasa,
	FieldColorCabello,
	FieldColorPiel,
	FieldColorOjos,
	FieldAnioNacimiento,
	FieldGenero,
	FieldPlanetaNatal,
	FieldURL,
}

// ArrayFields are the fields that, when present, must be arrays, and
// that default to empty arrays when absent.
var ArrayFields = []string{
	FieldPeliculas,
	FieldEspecies,
	FieldVehiculos,
	FieldNavesEspaciales,
}

// NumericFields are string fields whose content must parse as a decimal
// numeral when present.
var NumericFields = []string{
	FieldAltura,
	FieldMasa,
}

// ExamplePayload is echoed back when a create request is missing its
// required fields.
var ExamplePayload = map[string]interface{}{
	FieldNombre:       "Luke Skywalker",
	FieldAltura:       "172",
	FieldMasa:         "77",
	FieldColorCabello: "rubio",
	FieldGenero:       "masculino",
}
