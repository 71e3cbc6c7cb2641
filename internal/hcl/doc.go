// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It is responsible for parsing study files and translating them
// into the format-agnostic config model.
//
// A study file looks like:
//
//	study "degree_sweep" {
//	  path_template = "${bench}_${matrix}/${prefetcher}_DG${degree}_m5out"
//	  metrics       = ["simSeconds", "system.cpu.committedInsts"]
//
//	  parameter "bench"  { values = ["spmv"] }
//	  parameter "degree" { values = range(2, 10, 2) }
//
//	  pivot "sim_seconds" {
//	    index   = "matrix"
//	    columns = "degree"
//	    values  = "simSeconds"
//	  }
//
//	  source "local" { root = "/data/m5out" }
//	  export "csv" { path = "records.csv" }
//	}
package hcl
