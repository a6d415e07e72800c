package sprite

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownKind = errors.New("unknown sprite kind")

type Kind int

const (
	Obstacle Kind = iota
	GravityDevice
	SpeedBoost
	DamageBoost
)

var kindNames = [...]string{
	Obstacle:      "obstacle",
	GravityDevice: "gravity_device",
	SpeedBoost:    "speed_boost",
	DamageBoost:   "damage_boost",
}

// Kinds returns every sprite kind in generation order.
func Kinds() []Kind {
	return []Kind{Obstacle, GravityDevice, SpeedBoost, DamageBoost}
}

func ParseKind(name string) (Kind, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range kindNames {
		if n == key {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// String returns the file stem used for the kind's output.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

func (k Kind) Shade() ShadeFunc {
	switch k {
	case Obstacle:
		return shadeObstacle
	case GravityDevice:
		return shadeGravityDevice
	case SpeedBoost:
		return shadeSpeedBoost
	case DamageBoost:
		return shadeDamageBoost
	default:
		panic("sprite.Kind.Shade: invalid kind " + k.String())
	}
}

// Render draws the kind at the standard icon size.
func (k Kind) Render() Image {
	return Render(Size, k.Shade())
}
