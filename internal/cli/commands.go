package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var readCmd = &cobra.Command{
	Use:   "read <filename>",
	Short: "Read a file from the workspace",
	Args:  cobra.ExactArgs(1),
	RunE:  runRead,
}

var writeCmd = &cobra.Command{
	Use:   "write <filename> <text>",
	Short: "Write text to a workspace file",
	Long:  "Writes text to a file, creating parent directories as needed. A filename that already has a write entry in the operation log cannot be written again.",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runWrite,
}

var appendCmd = &cobra.Command{
	Use:   "append <filename> <text>",
	Short: "Append text to a workspace file",
	Long:  "Appends text to a file. Unlike write, append never deduplicates and does not create parent directories.",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runAppend,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <filename>",
	Short: "Delete a workspace file",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

var searchCmd = &cobra.Command{
	Use:   "search [directory]",
	Short: "List files under a workspace directory",
	Long:  "Lists files under the given directory relative to the workspace root, skipping dotfiles. With no argument the whole workspace is listed.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSearch,
}

var ingestCmd = &cobra.Command{
	Use:   "ingest <filename>",
	Short: "Chunk a workspace file into memory",
	Long:  "Reads the file, splits it into overlapping chunks, and adds each chunk to the memory database. Ingestion is best-effort: failures are logged, not returned.",
	Args:  cobra.ExactArgs(1),
	RunE:  runIngest,
}

func init() {
	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(writeCmd)
	rootCmd.AddCommand(appendCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(ingestCmd)
}

func runRead(cmd *cobra.Command, args []string) error {
	app, err := bootstrapApp()
	if err != nil {
		return err
	}
	defer app.Close()

	content, err := app.Store().Read(args[0])
	if err != nil {
		return err
	}
	fmt.Print(content)
	return nil
}

func runWrite(cmd *cobra.Command, args []string) error {
	app, err := bootstrapApp()
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.Store().Write(args[0], strings.Join(args[1:], " ")); err != nil {
		return err
	}
	fmt.Println("File written to successfully.")
	return nil
}

func runAppend(cmd *cobra.Command, args []string) error {
	app, err := bootstrapApp()
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.Store().Append(args[0], strings.Join(args[1:], " ")); err != nil {
		return err
	}
	fmt.Println("Text appended successfully.")
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	app, err := bootstrapApp()
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.Store().Delete(args[0]); err != nil {
		return err
	}
	fmt.Println("File deleted successfully.")
	return nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	app, err := bootstrapApp()
	if err != nil {
		return err
	}
	defer app.Close()

	directory := ""
	if len(args) > 0 {
		directory = args[0]
	}

	found, err := app.Store().Search(directory)
	if err != nil {
		return err
	}
	for _, path := range found {
		fmt.Println(path)
	}
	return nil
}

func runIngest(cmd *cobra.Command, args []string) error {
	app, err := bootstrapApp()
	if err != nil {
		return err
	}
	defer app.Close()

	result := app.Registry().Dispatch("ingest_file", map[string]string{"filename": args[0]})
	fmt.Println(result)
	return nil
}
