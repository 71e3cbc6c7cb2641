// Package yamlconfig is the YAML implementation of config.Loader. It reads
// the same study shape as the HCL loader:
//
//	studies:
//	  - name: degree_sweep
//	    path_template: "${bench}_${matrix}/${prefetcher}_DG${degree}_m5out"
//	    metrics: [simSeconds, system.cpu.committedInsts]
//	    parameters:
//	      bench: [spmv]
//	      degree: [2, 4, 6, 8]
//	    pivots:
//	      - {name: sim_seconds, index: matrix, columns: degree, values: simSeconds}
//	    source: {kind: local, root: /data/m5out}
//	    exports:
//	      - {kind: csv, path: records.csv}
//
// Parameters keep their document order.
package yamlconfig
