package catalog

// Filters parámetros reconocidos por la resolución del catálogo.
type Filters struct {
	IncludeProducts bool   // expandir los productos anidados de cada servicio
	Search          string // texto libre sobre nombre y descripción
	ShowInactive    bool   // por defecto solo se devuelven elementos activos
	IsAtHome        bool   // contexto especializado "a domicilio"
	Category        string // solo productos
}

// ExcludesInactive reporta si el llamador dejó fuera los elementos inactivos.
func (f Filters) ExcludesInactive() bool {
	return !f.ShowInactive
}
