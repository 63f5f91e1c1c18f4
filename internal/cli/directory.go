package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/mesh-intelligence/contacts/internal/controller"
	"github.com/mesh-intelligence/contacts/internal/presenter"
	"github.com/mesh-intelligence/contacts/internal/service"
	"github.com/mesh-intelligence/contacts/pkg/contacts"
)

// openDirectory wires repository, service, presenter and controller for the
// configured backend and format. The caller must call the returned release
// function when done.
func (a *app) openDirectory(out io.Writer) (*controller.Controller, func() error, error) {
	repo, release, err := contacts.OpenRepository(a.cfg.Backend)
	if err != nil {
		if isConfigError(err) {
			return nil, nil, userError(err)
		}
		return nil, nil, sysError(err)
	}

	view, err := presenter.New(out, a.cfg.Format)
	if err != nil {
		if cerr := release(); cerr != nil {
			return nil, nil, errors.Join(userError(err), sysError(cerr))
		}
		return nil, nil, userError(err)
	}

	svc := service.New(repo, a.logger)
	a.logger.Debug("directory ready", "backend", a.cfg.Backend)
	return controller.New(svc, view), release, nil
}

// closeWith calls release and reports its failure through err, unless err
// already holds an earlier failure.
func closeWith(release func() error, err *error) {
	if cerr := release(); cerr != nil && *err == nil {
		*err = sysError(fmt.Errorf("release directory: %w", cerr))
	}
}
