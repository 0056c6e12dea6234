package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/hbnb/internal/storage"
	"github.com/mesh-intelligence/hbnb/pkg/models"
)

// Console input errors. The wording matches what users of the interpreter
// already know.
var (
	errClassMissing = errors.New("** class name missing **")
	errClassUnknown = errors.New("** class doesn't exist **")
	errIDMissing    = errors.New("** instance id missing **")
	errNoInstance   = errors.New("** no instance found **")
	errAttrMissing  = errors.New("** attribute name missing **")
	errValueMissing = errors.New("** value missing **")
	errReadOnly     = errors.New("** attribute can't be updated **")
)

// Positional argument names, in order.
const (
	argClass = "class name"
	argID    = "instance id"
	argAttr  = "attribute name"
	argValue = "value"
)

var missingArgErrors = map[string]error{
	argClass: errClassMissing,
	argID:    errIDMissing,
	argAttr:  errAttrMissing,
	argValue: errValueMissing,
}

// positional validates that exactly the named arguments are present and
// reports the first missing one.
func positional(names ...string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < len(names) {
			return missingArgErrors[names[len(args)]]
		}
		return cobra.MaximumNArgs(len(names))(cmd, args)
	}
}

// checkKind returns errClassUnknown when kind is not registered.
func checkKind(kind string) error {
	if _, err := models.Lookup(kind); err != nil {
		return fmt.Errorf("%w: %w", errClassUnknown, err)
	}
	return nil
}

// find returns the stored record of kind with id.
func (c *console) find(kind, id string) (models.Model, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	m, err := c.store.Get(kind, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, errNoInstance
	}
	return m, err
}

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return systemError(fmt.Errorf("marshal JSON: %w", err))
	}
	fmt.Fprintln(w, string(out))
	return nil
}
