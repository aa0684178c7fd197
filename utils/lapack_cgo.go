//go:build cgo
// +build cgo

package utils

/*
#cgo CFLAGS: -march=native
#cgo LDFLAGS: -lopenblas -lm -lpthread
#include <cblas.h>
*/
import "C"

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	netblas "gonum.org/v1/netlib/blas/netlib"
)

// With cgo available, route dense algebra through the system BLAS. The local
// elimination systems are tiny, but the global operator apply benefits on
// large meshes.
func init() {
	blas64.Use(netblas.Implementation{})
	fmt.Println("Using netlib BLAS backend")
}
