// Package cluster loads the per-rule scheduling profiles passed to the
// workflow engine via --cluster-config and renders submission templates that
// carry {log} and {{cluster.X}} place-holders.
package cluster
