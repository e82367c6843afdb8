package mesher

import "github.com/hpinc/go3mf"

// Unit is a model length unit. The zero value is millimeters, the
// 3MF default.
type Unit int

const (
	UnitMillimeter Unit = iota
	UnitMicrometer
	UnitCentimeter
	UnitInch
	UnitFoot
	UnitMeter
)

// String returns the unit name as declared in a 3MF model.
func (u Unit) String() string {
	switch u {
	case UnitMicrometer:
		return "micron"
	case UnitMillimeter:
		return "millimeter"
	case UnitCentimeter:
		return "centimeter"
	case UnitInch:
		return "inch"
	case UnitFoot:
		return "foot"
	case UnitMeter:
		return "meter"
	}
	return "unknown"
}

// Role tags the functional purpose of a mesh object within a
// fabrication container. The zero value is RoleModel.
type Role int

const (
	RoleModel Role = iota
	RoleOther
	RoleSupport
	RoleSolidSupport
)

// String returns the role name as declared in a 3MF object type.
func (r Role) String() string {
	switch r {
	case RoleModel:
		return "model"
	case RoleOther:
		return "other"
	case RoleSupport:
		return "support"
	case RoleSolidSupport:
		return "solidsupport"
	}
	return "unknown"
}

// The unit and role tables are fixed, mutually inverse bijections and
// part of the stable contract with other implementations.
var unitToModel = map[Unit]go3mf.Units{
	UnitMicrometer: go3mf.UnitMicrometer,
	UnitMillimeter: go3mf.UnitMillimeter,
	UnitCentimeter: go3mf.UnitCentimeter,
	UnitInch:       go3mf.UnitInch,
	UnitFoot:       go3mf.UnitFoot,
	UnitMeter:      go3mf.UnitMeter,
}

var unitFromModel = make(map[go3mf.Units]Unit, len(unitToModel))

var roleToModel = map[Role]go3mf.ObjectType{
	RoleOther:        go3mf.ObjectTypeOther,
	RoleModel:        go3mf.ObjectTypeModel,
	RoleSupport:      go3mf.ObjectTypeSupport,
	RoleSolidSupport: go3mf.ObjectTypeSolidSupport,
}

var roleFromModel = make(map[go3mf.ObjectType]Role, len(roleToModel))

func init() {
	for k, v := range unitToModel {
		unitFromModel[v] = k
	}
	for k, v := range roleToModel {
		roleFromModel[v] = k
	}
}
