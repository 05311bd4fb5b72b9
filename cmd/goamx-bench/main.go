// Command goamx-bench detects, benchmarks, and cross-checks the AMX
// matmul engine from the command line.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/mdaiter/goamx"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "goamx-bench",
		Short: "Inspect and exercise the Apple AMX matmul engine",
	}
	root.AddCommand(detectCmd(), benchCmd(), verifyCmd())
	return root
}

func detectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect",
		Short: "Report AMX availability and the detected Apple Silicon generation",
		RunE: func(cmd *cobra.Command, args []string) error {
			ver := goamx.Detect()
			features := goamx.Features()
			fmt.Printf("generation:         %s\n", ver)
			fmt.Printf("amx available:      %t\n", goamx.IsAMXAvailable())
			fmt.Printf("performance cores:  %d\n", goamx.PerformanceCores())
			fmt.Printf("neon:               %t\n", features.HasNEON)
			fmt.Printf("fp16 simd:          %t\n", features.HasFP16)
			return nil
		},
	}
}

func benchCmd() *cobra.Command {
	var m, n, k int
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time a single matmul of the given shape",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := goamx.NewFill(m, k, 1)
			if err != nil {
				return err
			}
			b, err := goamx.NewFill(k, n, 1)
			if err != nil {
				return err
			}

			start := time.Now()
			c, err := goamx.Matmul(a, b)
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			flops := 2.0 * float64(m) * float64(n) * float64(k)
			gflops := flops / elapsed.Seconds() / 1e9

			fmt.Printf("shape:   %dx%dx%d\n", m, n, k)
			fmt.Printf("elapsed: %s\n", elapsed)
			fmt.Printf("throughput: %.2f GFLOP/s\n", gflops)
			fmt.Printf("output bytes: %s\n", humanize.Bytes(uint64(c.Rows()*c.Stride()*4)))
			return nil
		},
	}
	cmd.Flags().IntVar(&m, "m", 512, "rows of A")
	cmd.Flags().IntVar(&n, "n", 512, "cols of B")
	cmd.Flags().IntVar(&k, "k", 512, "cols of A / rows of B")
	return cmd
}

func verifyCmd() *cobra.Command {
	var m, n, k int
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the AMX matmul result against a fixed value on a constant-filled input",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := goamx.NewFill(m, k, 1)
			if err != nil {
				return err
			}
			b, err := goamx.NewFill(k, n, 1)
			if err != nil {
				return err
			}
			c, err := goamx.Matmul(a, b)
			if err != nil {
				return err
			}
			want := float32(k)
			maxErr := float32(0)
			for r := 0; r < m; r++ {
				for cc := 0; cc < n; cc++ {
					got := c.At(r, cc)
					diff := got - want
					if diff < 0 {
						diff = -diff
					}
					if diff > maxErr {
						maxErr = diff
					}
				}
			}
			fmt.Printf("max abs error vs expected %.1f: %g\n", want, maxErr)
			if maxErr > goamx.ScalarConsistencyTolerance {
				return fmt.Errorf("verification failed: error %g exceeds tolerance %g", maxErr, goamx.ScalarConsistencyTolerance)
			}
			fmt.Println("ok")
			return nil
		},
	}
	cmd.Flags().IntVar(&m, "m", 128, "rows of A")
	cmd.Flags().IntVar(&n, "n", 128, "cols of B")
	cmd.Flags().IntVar(&k, "k", 128, "cols of A / rows of B")
	return cmd
}
