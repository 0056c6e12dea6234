package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/hbnb/pkg/models"
)

// readOnlyAttrs cannot be changed from the console.
var readOnlyAttrs = map[string]bool{
	models.AttrID:        true,
	models.AttrCreatedAt: true,
	models.AttrUpdatedAt: true,
	models.KindKey:       true,
}

func (c *console) newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update <kind> <id> <attribute> <value>",
		Short: "Set one attribute of a record and save it",
		Long: `Update sets one attribute of a stored record and saves the store.

The value is converted to the type the attribute already has: integers for
number_rooms and the like, floats for latitude and longitude, and a
comma-separated list for amenity_ids. New attributes are stored as strings.`,
		Example: `  hbnb update Place 0b6e1a4e-7b0c-4f55-9d3a-7f1c1c1e2a10 number_rooms 3
  hbnb update User 5d1c7a0e-3f5e-4c7e-8d2a-9b0e7c2f1d44 first_name Betty`,
		Args: positional(argClass, argID, argAttr, argValue),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := c.find(args[0], args[1])
			if err != nil {
				return err
			}
			attr, raw := args[2], args[3]
			if readOnlyAttrs[attr] {
				return fmt.Errorf("%w: %s", errReadOnly, attr)
			}

			value := any(raw)
			if current, ok := models.Get(m, attr); ok {
				if value, err = coerce(raw, current); err != nil {
					return fmt.Errorf("%w: %s: %v", models.ErrInvalidArgument, attr, err)
				}
			}
			if err := models.Set(m, attr, value); err != nil {
				return err
			}
			if err := m.Save(); err != nil {
				return systemError(fmt.Errorf("save: %w", err))
			}
			return nil
		},
	}
}

// coerce converts raw to the type of current.
func coerce(raw string, current any) (any, error) {
	switch current.(type) {
	case int:
		return cast.ToIntE(raw)
	case float64:
		return cast.ToFloat64E(raw)
	case bool:
		return cast.ToBoolE(raw)
	case []string:
		if raw == "" {
			return []string{}, nil
		}
		parts := strings.Split(raw, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return cast.ToStringSliceE(parts)
	default:
		return raw, nil
	}
}
