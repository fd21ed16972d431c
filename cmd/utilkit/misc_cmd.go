package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/on-the-ground/utilkit/iox"
	"github.com/on-the-ground/utilkit/randx"
	"github.com/on-the-ground/utilkit/strfmt"
)

func newCRC64Cmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "crc64 <string>",
		Short: "Print the CRC64 (ECMA-182) checksum of a string",
		Example: `  utilkit crc64 php              # 12674510492238016912
  utilkit crc64 --format 0x%x php  # 0xafe4e823e7cef190`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := strfmt.CRC64(args[0], format)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", "%u", "printf-style format of the checksum (%u, %d, %x, %X)")
	return cmd
}

func newRandstrCmd() *cobra.Command {
	var length int
	cmd := &cobra.Command{
		Use:   "randstr",
		Short: "Print a random alphanumeric string",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if length < 1 {
				return fmt.Errorf("length must be positive, got %d", length)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), randx.String(length))
			return err
		},
	}
	cmd.Flags().IntVarP(&length, "length", "l", randx.DefaultLength, "number of characters")
	return cmd
}

func newTmpfileCmd(a *app) *cobra.Command {
	var (
		dir, subdir    string
		prefix, suffix string
		autoDelete     bool
	)
	cmd := &cobra.Command{
		Use:   "tmpfile",
		Short: "Create an empty temporary file and print its name",
		Long: fmt.Sprintf(`Create an empty temporary file and print its name.

Without --dir the file is created below the utilkit misc directory,
$%s or utilkit/misc in the system temporary directory.`, iox.MiscDirEnv),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := iox.TmpFile(
				iox.WithDir(dir),
				iox.WithSubdir(subdir),
				iox.WithPrefix(prefix),
				iox.WithSuffix(suffix),
				iox.WithAutoDelete(autoDelete),
				iox.WithLogger(a.logger),
			)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), name)
			return err
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "directory to create the file in")
	cmd.Flags().StringVar(&subdir, "subdir", "", "subdirectory to nest the file in")
	cmd.Flags().StringVar(&prefix, "prefix", "", "file name prefix (random when empty)")
	cmd.Flags().StringVar(&suffix, "suffix", "", "file name suffix, e.g. .txt (random when empty)")
	cmd.Flags().BoolVar(&autoDelete, "auto-delete", false, "remove the file again when the command exits")
	return cmd
}
