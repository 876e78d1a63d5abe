package booking

import (
	"regexp"
	"strings"
)

// MethodPrefix identifies this integration's shipping lines. Changing it
// breaks method ids stored on existing orders.
const MethodPrefix = "carrier_booking"

var pickupServicePattern = regexp.MustCompile(`^(SERVICEPAKKE)-(\d+)$`)

// Method is a parsed shipping method id.
type Method struct {
	Name          string
	Service       string
	PickupPointID string
}

// ParseMethodID splits a "name:service" method id. A pickup point id
// embedded in the service part (SERVICEPAKKE-123) is extracted.
func ParseMethodID(methodID string) Method {
	parts := strings.SplitN(methodID, ":", 2)
	method := Method{Name: parts[0]}
	if len(parts) != 2 {
		return method
	}
	method.Service = strings.ToUpper(parts[1])
	if m := pickupServicePattern.FindStringSubmatch(method.Service); m != nil {
		method.Service = m[1]
		method.PickupPointID = m[2]
	}
	return method
}

// Recognized reports whether the method id belongs to this integration.
func (m Method) Recognized() bool {
	return m.Name == MethodPrefix
}
