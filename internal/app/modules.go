package app

import (
	"github.com/specialistvlad/statgrid/internal/registry"
	"github.com/specialistvlad/statgrid/modules/csv_export"
	"github.com/specialistvlad/statgrid/modules/gcs"
	"github.com/specialistvlad/statgrid/modules/http_client"
	"github.com/specialistvlad/statgrid/modules/json_export"
	"github.com/specialistvlad/statgrid/modules/local"
	"github.com/specialistvlad/statgrid/modules/mqtt_export"
	"github.com/specialistvlad/statgrid/modules/print"
	"github.com/specialistvlad/statgrid/modules/s3"
	"github.com/specialistvlad/statgrid/modules/sqlite_export"
)

// coreModules is the definitive list of all modules that are compiled into
// the statgrid binary.
var coreModules = []registry.Module{
	&local.Module{},
	&s3.Module{},
	&gcs.Module{},
	&http_client.Module{},
	&print.Module{},
	&csv_export.Module{},
	&json_export.Module{},
	&sqlite_export.Module{},
	&mqtt_export.Module{},
}

// CoreModules returns a copy of the compiled-in module list, for callers that
// want to extend it.
func CoreModules() []registry.Module {
	return append([]registry.Module(nil), coreModules...)
}
