package cmd

import (
	"fmt"

	"github.com/openmultiplayer/open.mp-capi/internal/codegen/common"
)

type Version struct{}

func (v *Version) Run() error {
	version, err := common.GetVersion()
	if err != nil {
		return err
	}
	fmt.Println("capigen", version)
	return nil
}
