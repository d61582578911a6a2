package catalog

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// Record es un registro débilmente tipado tal como llega de una fuente
// (JSON decodificado con UseNumber o una fila de pgx.RowToMap).
type Record = map[string]any

// toDecimal coerción numérica estándar: números, cadenas numéricas y booleanos.
// Cualquier otra entrada vale 0.
func toDecimal(v any) decimal.Decimal {
	switch x := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return x
	case *decimal.Decimal:
		if x == nil {
			return decimal.Zero
		}
		return *x
	case json.Number:
		return parseDecimal(x.String())
	case string:
		return parseDecimal(x)
	case bool:
		if x {
			return decimal.NewFromInt(1)
		}
		return decimal.Zero
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return decimal.Zero
		}
		return decimal.NewFromFloat(x)
	case float32:
		if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
			return decimal.Zero
		}
		return decimal.NewFromFloat32(x)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		n, err := cast.ToInt64E(x)
		if err != nil {
			return decimal.Zero
		}
		return decimal.NewFromInt(n)
	}
	return decimal.Zero
}

func parseDecimal(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// toMoney como toDecimal pero nunca negativo.
func toMoney(v any) decimal.Decimal {
	d := toDecimal(v)
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// toBool coerción por "truthiness": true, 1 y "true" son verdaderos; "false", "0", 0 y ""
// son falsos; cualquier otra cadena no vacía u objeto presente es verdadero.
func toBool(v any, def bool) bool {
	switch x := v.(type) {
	case nil:
		return def
	case bool:
		return x
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return false
		}
		if b, err := strconv.ParseBool(s); err == nil {
			return b
		}
		return true
	case json.Number, decimal.Decimal:
		return !toDecimal(x).IsZero()
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return true
	}
	return b
}

// toString devuelve la representación textual no vacía de v.
// Las categorías pueden llegar como objeto {id, name}: se usa su nombre.
func toString(v any) (string, bool) {
	var s string
	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		s = x
	case [16]byte:
		s = uuid.UUID(x).String()
	case uuid.UUID:
		s = x.String()
	case map[string]any:
		return toString(x["name"])
	default:
		var err error
		s, err = cast.ToStringE(v)
		if err != nil {
			return "", false
		}
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

// toPositiveInt parte entera de v si es mayor que cero.
func toPositiveInt(v any) (int, bool) {
	n := toDecimal(v).IntPart()
	if n <= 0 || n > math.MaxInt32 {
		return 0, false
	}
	return int(n), true
}

func asRecord(v any) (Record, bool) {
	rec, ok := v.(map[string]any)
	return rec, ok && rec != nil
}

func asList(v any) []any {
	switch x := v.(type) {
	case []any:
		return x
	case []map[string]any:
		out := make([]any, len(x))
		for i := range x {
			out[i] = x[i]
		}
		return out
	}
	return nil
}
