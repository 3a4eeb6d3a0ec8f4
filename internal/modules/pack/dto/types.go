package dto

import catalogdto "tonica/internal/modules/catalog/dto"

type PackInfo struct {
	Name    string
	Version string
	Binary  string
	Enabled bool
}

type CheckResult struct {
	Name            string
	BinaryReachable bool
	ChecksumValid   bool
	LifecycleOK     bool
	Error           string
}

type MetadataOutput struct {
	Name      string
	Version   string
	ItemCount int
}

type PullOutput struct {
	Pack   string
	Import catalogdto.ImportOutput
}
