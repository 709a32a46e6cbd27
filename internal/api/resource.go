package api

import (
	"errors"
	"net/http"
	"path"

	"github.com/go-chi/chi/v5"

	"github.com/starford/noteful/internal/apperr"
	"github.com/starford/noteful/internal/database"
	"github.com/starford/noteful/internal/serializer"
)

// resource serves the REST routes of one table-backed entity. C and U are the
// request schemas for create and partial update.
type resource[T any, C createRequest[T], U updateRequest] struct {
	label     string
	repo      database.Repository[T]
	errs      *ErrorHandler
	idOf      func(T) string
	serialize func(T) any
}

// rowHandler receives the row resolved by the existence guard.
type rowHandler[T any] func(w http.ResponseWriter, r *http.Request, row T) error

func (rs *resource[T, C, U]) routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", rs.errs.Handle(rs.list))
	r.Post("/", rs.errs.Handle(rs.create))
	r.Get("/{id}", rs.errs.Handle(rs.guard(rs.get)))
	r.Delete("/{id}", rs.errs.Handle(rs.guard(rs.remove)))
	r.Patch("/{id}", rs.errs.Handle(rs.guard(rs.update)))
	return r
}

// guard loads the row named by the {id} URL parameter and passes it to next,
// or answers 404 without calling next.
func (rs *resource[T, C, U]) guard(next rowHandler[T]) handlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		row, err := rs.repo.GetByID(r.Context(), chi.URLParam(r, "id"))
		if errors.Is(err, apperr.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, rs.label+" doesn't exist")
			return nil
		}
		if err != nil {
			return err
		}
		return next(w, r, row)
	}
}

// list handles GET /.
func (rs *resource[T, C, U]) list(w http.ResponseWriter, r *http.Request) error {
	rows, err := rs.repo.GetAll(r.Context())
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, serializer.Map(rows, rs.serialize))
	return nil
}

// create handles POST /.
func (rs *resource[T, C, U]) create(w http.ResponseWriter, r *http.Request) error {
	var req C
	if !decodeJSON(w, r, &req) {
		return nil
	}
	missing, err := missingFields(req)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		writeMessage(w, http.StatusBadRequest, missingFieldMessage(missing[0]))
		return nil
	}

	row, err := rs.repo.Insert(r.Context(), req.toRow())
	if err != nil {
		return err
	}
	w.Header().Set("Location", path.Join(r.URL.Path, rs.idOf(row)))
	writeJSON(w, http.StatusCreated, rs.serialize(row))
	return nil
}

// get handles GET /{id}.
func (rs *resource[T, C, U]) get(w http.ResponseWriter, _ *http.Request, row T) error {
	writeJSON(w, http.StatusOK, rs.serialize(row))
	return nil
}

// remove handles DELETE /{id}.
func (rs *resource[T, C, U]) remove(w http.ResponseWriter, r *http.Request, _ T) error {
	if err := rs.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

// update handles PATCH /{id}.
func (rs *resource[T, C, U]) update(w http.ResponseWriter, r *http.Request, _ T) error {
	var req U
	if !decodeJSON(w, r, &req) {
		return nil
	}
	if emptyUpdate(req) {
		writeMessage(w, http.StatusBadRequest, emptyUpdateMessage(req.updatableFields()))
		return nil
	}
	if _, err := rs.repo.Update(r.Context(), chi.URLParam(r, "id"), req.fields()); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}
