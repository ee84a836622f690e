package app

import (
	"github.com/specialistvlad/buildgrid/internal/registry"
	"github.com/specialistvlad/buildgrid/modules/echo"
	"github.com/specialistvlad/buildgrid/modules/fileset"
	"github.com/specialistvlad/buildgrid/modules/property"
)

// coreModules is the definitive list of all element modules that are
// compiled into the buildgrid binary.
var coreModules = []registry.Module{
	&echo.Module{},
	&fileset.Module{},
	&property.Module{},
}
