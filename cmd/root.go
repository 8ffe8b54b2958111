package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pfob",
		Short:         "pfob: personal finance over Open Banking, from the terminal",
		Long:          "pfob talks to the Open Banking backend to manage linked bank accounts, browse transactions, set spending limits, and run ESG-scored transfers from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newRegisterCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newDashboardCmd(app),
		newAccountsCmd(app),
		newGoalsCmd(app),
		newTransactionsCmd(app),
		newTransferCmd(app),
		newConvertPointsCmd(app),
	)

	return rootCmd
}
