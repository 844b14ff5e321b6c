package modules

import "fmt"

// Argument coercions applied by Call. They panic on values that cannot be
// converted; Call recovers the panic into an error.

func ToString(v interface{}) string {
	return fmt.Sprintf("%v", v)
}

func ToInt(v interface{}) int {
	switch val := v.(type) {
	case int:
		return val
	case int64:
		return int(val)
	case float64:
		return int(val)
	case bool:
		if val {
			return 1
		}
		return 0
	default:
		panic(fmt.Sprintf("cannot convert %T to int", v))
	}
}

func ToFloat(v interface{}) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case float32:
		return float64(val)
	case int:
		return float64(val)
	case int64:
		return float64(val)
	default:
		panic(fmt.Sprintf("cannot convert %T to float", v))
	}
}

func ToBool(v interface{}) bool {
	switch val := v.(type) {
	case bool:
		return val
	case int:
		return val != 0
	case float64:
		return val != 0
	case string:
		return val != ""
	case nil:
		return false
	default:
		return true
	}
}
