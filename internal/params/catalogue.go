package params

// catalogue is the pipeline's built-in parameter dictionary. Keys and default
// values must stay stable: downstream rules, submission templates, and output
// naming all depend on them.
var catalogue = []Definition{
	// Base options shared by every command.
	{
		Key:  "cluster_config",
		Help: "JSON/YAML file specifying cluster configuration parameters to pass to the workflow engine's --cluster-config option.",
	},
	{
		Key:    "distribute",
		Action: ActionStoreTrue,
		Help:   "Distribute analysis to Grid Engine-style cluster.",
	},
	{
		Key: "drmaalib",
		Help: "For jobs that are distributed, this is the location to the DRMAA library (libdrmaa.so) installed with Grid Engine. " +
			"If DRMAA_LIBRARY_PATH is already set in the environment, then this option is not required.",
	},
	{
		Key:    "dryrun",
		Action: ActionStoreTrue,
		Help:   "Print commands that will run without running them.",
	},
	{
		Key:        "jobs",
		Default:    1,
		HasDefault: true,
		Help:       "Number of jobs to run simultaneously.",
	},
	{
		Key:        "job_prefix",
		Default:    nil,
		HasDefault: true,
		Help:       "Prepend this string to submitted job names. Can be used to distinguish jobs from multiple runs.",
	},
	{
		Key:        "keep_going",
		Default:    false,
		HasDefault: true,
		Action:     ActionStoreTrue,
		Help: "When a pipeline step fails, do not stop the pipeline. The workflow engine will continue submitting " +
			"new jobs until it cannot continue.",
	},
	{
		Key: "log",
		Help: "Cluster log file directory for distributed jobs. Each command defaults to a log directory in its " +
			"output subdirectory. The genotyper will use \"log\" in its working directory. If this value is set, " +
			"all logs from all commands are written to the specified directory.",
	},
	{
		Key:        "nt",
		Default:    false,
		HasDefault: true,
		Action:     ActionStoreTrue,
		Help: "Do not remove temporary files. This option may leave behind many unwanted files including all " +
			"intermediate local assembly files.",
	},
	{
		Key:        "tempdir",
		Default:    nil,
		HasDefault: true,
		Help:       "Temporary directory.",
	},
	{
		Key:    "verbose",
		Action: ActionStoreTrue,
		Help:   "Print extra runtime information.",
	},
	{
		Key:        "wait_time",
		Default:    60,
		HasDefault: true,
		Help: "Number of seconds to wait for files after a job finishes before giving up. Set to a high value for " +
			"distributed storage with high latency.",
	},
	{
		Key: "cluster_params",
		Default: " -V -cwd -j y -o ./{log} " +
			"-pe serial {{cluster.cpu}} " +
			"-l mfree={{cluster.mem}} " +
			"-l h_rt={{cluster.rt}} " +
			"{{cluster.params}} " +
			"-l gpfsstate=0 " +
			"-w n -S /bin/bash",
		HasDefault: true,
		Help: "Cluster scheduling parameters with place-holders as {{cluster.XXX}} for parameters in the cluster " +
			"configuration file (--cluster-config) and {log} for the log directory where standard output from " +
			"cluster jobs is written.",
	},

	// Options consumed by more than one pipeline component.
	{
		Key:        "mapping_quality",
		Default:    30,
		HasDefault: true,
		Help: "Minimum mapping quality of raw reads. Used by \"detect\" to filter reads while finding gaps and " +
			"hardstops. Used by \"assemble\" to filter reads with low mapping quality before the assembly step.",
	},

	// Reference.
	{
		Key:        "reference",
		Default:    nil,
		HasDefault: true,
		Help:       "FASTA file of reference to index.",
	},
	{
		Key:        "no_link_index",
		Alias:      "link_index",
		Default:    true,
		HasDefault: true,
		Action:     ActionStoreFalse,
		Help: "If reference index files exist (.fai, .sa, or .ctab), then do not link them. This forces the " +
			"pipeline to build its own set of indices.",
	},

	// Align.
	{
		Key: "alignment_parameters",
		Default: "--bestn 2 " +
			"--maxAnchorsPerPosition 100 " +
			"--advanceExactMatches 10 " +
			"--affineAlign " +
			"--affineOpen 100 " +
			"--affineExtend 0 " +
			"--insertion 5 " +
			"--deletion 5 " +
			"--extend " +
			"--maxExtendDropoff 50",
		HasDefault: true,
		Help:       "BLASR parameters for raw read alignments.",
	},
	{
		Key:        "batches",
		Default:    20,
		HasDefault: true,
		Help:       "Number of batches to split input reads into such that there will be one BAM output file per batch.",
	},
	{
		Key:        "reads",
		Default:    "",
		HasDefault: true,
		Help: "Text file with each line containing an absolute path to an input file of read data. Read data must " +
			"be from PacBio sequencing technology and be in BAM (.bam) or BAX (.bax.h5) format.",
	},
	{
		Key:        "threads",
		Default:    1,
		HasDefault: true,
		Help:       "Number of threads to use for each alignment job.",
	},

	// Detect.
	{
		Key:        "assembly_window_size",
		Default:    60000,
		HasDefault: true,
		Help:       "Size of reference window for local assemblies.",
	},
	{
		Key:        "assembly_window_slide",
		Default:    20000,
		HasDefault: true,
		Help:       "Size of reference window slide for local assemblies.",
	},
	{
		Key:        "candidate_group_size",
		Default:    1000000,
		HasDefault: true,
		Help: "Candidate regions are grouped into batches of this size. When local assemblies are performed, reads " +
			"are first extracted over the window and stored on the compute node. Then reads for each local " +
			"assembly are pulled from the cached reads on the compute node. If jobs are not distributed, the " +
			"tuning of this parameter has little effect.",
	},
	{
		Key:        "exclude",
		Default:    nil,
		HasDefault: true,
		Help:       "BED file of regions to exclude from local assembly (e.g., heterochromatic sequences, etc.).",
	},
	{
		Key:        "max_candidate_length",
		Default:    60000,
		HasDefault: true,
		Help:       "Maximum length allowed for an SV candidate region.",
	},
	{
		Key:        "max_coverage",
		Default:    100,
		HasDefault: true,
		Help:       "Maximum number of total reads allowed to flag a region as an SV candidate.",
	},
	{
		Key:        "max_support",
		Default:    100,
		HasDefault: true,
		Help:       "Maximum number of supporting reads allowed to flag a region as an SV candidate.",
	},
	{
		Key:        "min_coverage",
		Default:    5,
		HasDefault: true,
		Help:       "Minimum number of total reads required to flag a region as an SV candidate.",
	},
	{
		Key:        "min_hardstop_support",
		Default:    11,
		HasDefault: true,
		Help:       "Minimum number of reads with hardstops required to flag a region as an SV candidate.",
	},
	{
		Key:        "min_length",
		Default:    50,
		HasDefault: true,
		Help:       "Minimum length required for SV candidates.",
	},
	{
		Key:        "min_support",
		Default:    5,
		HasDefault: true,
		Help:       "Minimum number of supporting reads required to flag a region as an SV candidate.",
	},

	// Local assembly.
	{
		Key: "asm_alignment_parameters",
		Default: "--affineAlign " +
			"--affineOpen 8 " +
			"--affineExtend 0 " +
			"--bestn 1 " +
			"--maxMatch 30 " +
			"--sdpTupleSize 13",
		HasDefault: true,
		Help:       "BLASR parameters to use to align local assemblies.",
	},
	{
		Key:        "asm_cpu",
		Default:    4,
		HasDefault: true,
		Help:       "Number of CPUs to use for assembly steps.",
	},
	{
		Key:        "asm_mem",
		Default:    "1G",
		HasDefault: true,
		Help: "Multiply this amount of memory by the number of cores for the amount of memory allocated to " +
			"assembly steps. If multiple simultaneous assemblies are run, then this is multiplied again by that " +
			"factor (see --asm-parallel).",
	},
	{
		Key:        "asm_polish",
		Default:    "arrow",
		HasDefault: true,
		Help: "Assembly polishing method (arrow|quiver). \"arrow\" should work on all PacBio data, but \"quiver\" " +
			"will only work on RS II input.",
	},
	{
		Key:        "asm_group_rt",
		Default:    "72:00:00",
		HasDefault: true,
		Help: "Set maximum runtime for an assembly group. Assemblies are grouped by region, and multiple assemblies " +
			"are done in one grouped job. This is the maximum runtime for the whole group.",
	},
	{
		Key:        "asm_parallel",
		Default:    1,
		HasDefault: true,
		Help:       "Number of simultaneous assemblies to run. The actual thread count will be this times --asm-cpu.",
	},
	{
		Key:        "asm_rt",
		Default:    "30m",
		HasDefault: true,
		Help: "Set maximum runtime for an assembly region. This should be a valid argument for the Linux " +
			"\"timeout\" command.",
	},

	// Variant caller.
	{
		Key:        "variants",
		Default:    "variants.vcf.gz",
		HasDefault: true,
		Help:       "VCF of variants called by local assembly alignments.",
	},
	{
		Key:        "sample",
		Default:    "UnnamedSample",
		HasDefault: true,
		Help:       "Sample name to use in final variant calls.",
	},
	{
		Key:        "species",
		Default:    "human",
		HasDefault: true,
		Help:       "Common or scientific species name to pass to RepeatMasker.",
	},
	{
		Key:        "rmsk",
		Default:    false,
		HasDefault: true,
		Action:     ActionStoreTrue,
		Help: "Run RepeatMasker on SVs. This option was developed using RepeatMasker 3.3.0 with the WU-BLAST " +
			"engine. With other versions, it may not run smoothly or it may cause failures in later steps.",
	},

	// Run.
	{
		Key:        "runjobs",
		Default:    "",
		HasDefault: true,
		Help: "A comma-separated list of jobs for each step: align, detect, assemble, and call (in that order). A " +
			"missing number uses the value set by --jobs (or 1 if --jobs was not set).",
	},

	// Genotyper.
	{
		Key: "genotyper_config",
		Help: "JSON configuration file with SV reference paths, samples to genotype as BAMs, and their " +
			"corresponding references.",
	},
	{
		Key:        "gt_mapq",
		Default:    20,
		HasDefault: true,
		Help:       "Minimum mapping quality of short reads against the reference and contigs.",
	},
	{
		Key:  "genotyped_variants",
		Help: "VCF of variant genotypes for the given sample-level BAMs.",
	},
	{
		Key:        "gt_map_cpu",
		Default:    8,
		HasDefault: true,
		Help:       "CPU cores to allocate for BWA mapping jobs.",
	},
	{
		Key:        "gt_map_mem",
		Default:    "2.5G",
		HasDefault: true,
		Help:       "Memory per CPU core to allocate for BWA mapping jobs.",
	},
	{
		Key:        "gt_map_disk",
		Default:    "15G",
		HasDefault: true,
		Help:       "Temp space per CPU core to allocate for BWA mapping jobs.",
	},
	{
		Key:        "gt_map_time",
		Default:    "72:00:00",
		HasDefault: true,
		Help:       "Maximum runtime to allocate for BWA mapping jobs.",
	},
	{
		Key:    "gt_keep_temp",
		Action: ActionStoreTrue,
		Help:   "Do not remove temp directory after genotyping.",
	},
}
