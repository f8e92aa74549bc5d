package app

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/heartmarshall/yatube-backend/internal/transport/middleware"
)

const rateLimitCleanupInterval = 5 * time.Minute

// registrar mounts its routes on a mux.
type registrar interface {
	Register(mux *http.ServeMux)
}

type rootDeps struct {
	site       registrar
	health     registrar
	mediaRoot  string
	middleware middleware.Middleware
}

// newRootHandler serves uploaded media and health probes directly and hands
// everything else to the site behind the middleware chain. Media lives on
// this outer mux because "/media/" overlaps the site's username routes.
func newRootHandler(deps rootDeps) http.Handler {
	site := http.NewServeMux()
	deps.site.Register(site)

	root := http.NewServeMux()
	deps.health.Register(root)
	root.Handle("GET /media/", http.StripPrefix("/media/", http.FileServer(mediaDir(deps.mediaRoot))))
	root.Handle("/", deps.middleware(site))
	return root
}

// mediaDir is an http.Dir that never lists directories.
type mediaDir string

func (d mediaDir) Open(name string) (http.File, error) {
	f, err := http.Dir(d).Open(name)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, fs.ErrNotExist
	}
	return f, nil
}
