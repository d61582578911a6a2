package catalog

// Nombres canónicos de campo usados como claves de FieldTable.
const (
	FieldID             = "id"
	FieldSlug           = "slug"
	FieldName           = "name"
	FieldDescription    = "description"
	FieldDuration       = "duration"
	FieldCustomerPrice  = "customerPrice"
	FieldVendorPayout   = "vendorPayout"
	FieldCategory       = "category"
	FieldIcon           = "icon"
	FieldImage          = "image"
	FieldSKU            = "sku"
	FieldAllowsProducts = "allowsProducts"
	FieldIsActive       = "isActive"
	FieldProducts       = "products"
)

// Campos de los enlaces servicio-producto.
const (
	FieldLinkQuantity = "quantity"
	FieldLinkOptional = "optional"
	FieldLinkProduct  = "productCatalog"
)

// FieldTable declara, por campo canónico, los nombres aceptados en el upstream en orden de
// prioridad (el primero presente gana) y el valor por defecto de isActive de la fuente.
type FieldTable struct {
	Variants      map[string][]string
	ActiveDefault bool
}

// Lookup devuelve el primer valor presente (no nil) para el campo canónico.
func (t FieldTable) Lookup(rec Record, field string) (any, bool) {
	for _, key := range t.Variants[field] {
		if v, ok := rec[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// linkFields aplica a los enlaces servicio-producto de todas las fuentes.
var linkFields = FieldTable{
	Variants: map[string][]string{
		FieldID:           {"id", "link_id", "linkId"},
		FieldLinkQuantity: {"quantity", "qty"},
		FieldLinkOptional: {"optional", "is_optional", "isOptional"},
		FieldLinkProduct:  {"productCatalog", "product_catalog", "product"},
	},
}

// ServiceFields tabla de servicios para el datastore primario, el backend genérico y el
// catálogo a domicilio. El precio genérico "price" es el último recurso para customerPrice.
var ServiceFields = FieldTable{
	Variants: map[string][]string{
		FieldID:             {"id", "_id", "service_id", "serviceId"},
		FieldSlug:           {"slug"},
		FieldName:           {"name", "service_name", "serviceName", "title"},
		FieldDescription:    {"description"},
		FieldDuration:       {"duration", "duration_minutes", "durationMinutes"},
		FieldCustomerPrice:  {"customerPrice", "customer_price", "price"},
		FieldVendorPayout:   {"vendorPayout", "vendor_payout"},
		FieldCategory:       {"category", "category_name", "categoryName"},
		FieldIcon:           {"icon", "icon_url", "iconUrl"},
		FieldAllowsProducts: {"allowsProducts", "allows_products"},
		FieldIsActive:       {"isActive", "is_active", "active"},
		FieldProducts:       {"products", "service_products", "serviceProducts"},
	},
	ActiveDefault: true,
}

// ProductFields tabla de productos para el datastore primario, el backend genérico y el
// catálogo a domicilio.
var ProductFields = FieldTable{
	Variants: map[string][]string{
		FieldID:            {"id", "_id", "product_id", "productId"},
		FieldSlug:          {"slug"},
		FieldName:          {"name", "product_name", "productName", "title"},
		FieldDescription:   {"description"},
		FieldCategory:      {"category", "category_name", "categoryName"},
		FieldImage:         {"image", "image_url", "imageUrl"},
		FieldCustomerPrice: {"customerPrice", "customer_price", "price"},
		FieldVendorPayout:  {"vendorPayout", "vendor_payout"},
		FieldSKU:           {"sku"},
		FieldIsActive:      {"isActive", "is_active", "active"},
	},
	ActiveDefault: true,
}

// LegacyServiceFields tabla legada: una sola columna price alimenta customerPrice y
// vendorPayout; la categoría llega por join como category_name.
var LegacyServiceFields = FieldTable{
	Variants: map[string][]string{
		FieldID:             {"id"},
		FieldName:           {"name"},
		FieldDescription:    {"description"},
		FieldDuration:       {"duration"},
		FieldCustomerPrice:  {"price"},
		FieldVendorPayout:   {"price"},
		FieldCategory:       {"category_name", "category"},
		FieldIcon:           {"icon"},
		FieldAllowsProducts: {"allows_products"},
		FieldIsActive:       {"is_active"},
	},
	ActiveDefault: true,
}

// LegacyProductFields tabla legada de productos.
var LegacyProductFields = FieldTable{
	Variants: map[string][]string{
		FieldID:            {"id"},
		FieldName:          {"name"},
		FieldDescription:   {"description"},
		FieldCategory:      {"category_name", "category"},
		FieldImage:         {"image_url", "image"},
		FieldCustomerPrice: {"price"},
		FieldVendorPayout:  {"price"},
		FieldSKU:           {"sku"},
		FieldIsActive:      {"is_active"},
	},
	ActiveDefault: true,
}
