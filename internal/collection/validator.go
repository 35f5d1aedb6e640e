package collection

import (
	"strings"

	"github.com/samber/lo"
	"go.uber.org/multierr"
	"golang.org/x/xerrors"
)

var validMethods = []string{"GET", "POST", "PUT", "DELETE", "PATCH"}

// Validate sanity-checks an assembled collection and aggregates every
// finding, so one pass reports them all. Callers treat the result as a
// warning: a collection with findings still imports, it just means some
// route file carries a declaration or doc block worth fixing.
func Validate(coll *Collection) error {
	var errs error

	if coll.Info.Name == "" {
		errs = multierr.Append(errs, xerrors.New("collection name is empty"))
	}
	if coll.Info.Schema != SchemaURL {
		errs = multierr.Append(errs, xerrors.Errorf("unexpected schema %q", coll.Info.Schema))
	}

	seen := make(map[string]bool)
	for _, folder := range coll.Item {
		if folder.Name == "" {
			errs = multierr.Append(errs, xerrors.New("folder with empty name"))
		}
		if seen[folder.Name] {
			errs = multierr.Append(errs, xerrors.Errorf("duplicate folder name %q", folder.Name))
		}
		seen[folder.Name] = true

		if len(folder.Item) == 0 {
			errs = multierr.Append(errs, xerrors.Errorf("folder %q has no requests", folder.Name))
		}
		for _, item := range folder.Item {
			errs = multierr.Append(errs, validateItem(folder.Name, item))
		}
	}
	return errs
}

func validateItem(folder string, item Item) error {
	var errs error

	if item.Name == "" {
		errs = multierr.Append(errs, xerrors.Errorf("%s: request with empty name", folder))
	}

	req := item.Request
	if !lo.Contains(validMethods, req.Method) {
		errs = multierr.Append(errs, xerrors.Errorf("%s/%s: unknown method %q", folder, item.Name, req.Method))
	}
	if req.Body != nil && !lo.Contains(bodyMethods, req.Method) {
		errs = multierr.Append(errs, xerrors.Errorf("%s/%s: %s request carries a body", folder, item.Name, req.Method))
	}
	if req.Body == nil && lo.Contains(bodyMethods, req.Method) {
		errs = multierr.Append(errs, xerrors.Errorf("%s/%s: %s request without a body", folder, item.Name, req.Method))
	}
	if !strings.HasPrefix(req.URL.Raw, hostVariable) {
		errs = multierr.Append(errs, xerrors.Errorf("%s/%s: url does not start with %s", folder, item.Name, hostVariable))
	}
	return errs
}
