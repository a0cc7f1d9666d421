// Package store exposes the persistent key-value store as a Sona module.
package store

import (
	"github.com/Bryantad/Sona-sub001/pkg/eval"
	"github.com/Bryantad/Sona-sub001/pkg/store/storedefs"
)

// Ns returns the namespace for the store module, backed by s.
func Ns(s storedefs.Store) *eval.Ns {
	return eval.BuildNsNamed("store").
		AddGoFns(map[string]any{
			"get": func(k string, def ...any) (any, error) {
				v, err := s.Get(k)
				if err == storedefs.ErrNoKey {
					if len(def) > 0 {
						return def[0], nil
					}
					return nil, nil
				}
				return v, err
			},
			"put":  s.Put,
			"del":  s.Del,
			"keys": s.Keys,
		}).Ns()
}
