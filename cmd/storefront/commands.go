package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/salad-karo/storefront/internal/catalog"
	"github.com/salad-karo/storefront/internal/config"
	"github.com/salad-karo/storefront/internal/policy"
	"github.com/salad-karo/storefront/internal/repo/mirror"
	"github.com/salad-karo/storefront/internal/storage"
	"github.com/salad-karo/storefront/internal/store"
	"github.com/spf13/cobra"
)

// session owns the stores for one CLI invocation. State lives in the local
// snapshot directory, so consecutive invocations behave like one browsing
// session.
type session struct {
	cart  *store.CartStore
	likes *store.LikesStore
}

var (
	userFlag    string
	offlineFlag bool
	sess        *session
)

var rootCmd = &cobra.Command{
	Use:           "salad-karo",
	Short:         "Salad Karo storefront session",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		conf, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		dataDir := conf.Session.DataDir
		if !filepath.IsAbs(dataDir) {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("resolve home dir: %w", err)
			}
			dataDir = filepath.Join(home, dataDir)
		}
		local, err := storage.NewFileStore(dataDir)
		if err != nil {
			return err
		}

		var mirrorClient mirror.Client
		if conf.Mirror.Enabled && !offlineFlag {
			mirrorClient = mirror.NewClient(conf)
		}

		identity := userFlag
		if identity == "" {
			identity = conf.Session.User
		}

		ctx := cmd.Context()
		sess = &session{
			cart:  store.NewCartStore(ctx, local, mirrorClient),
			likes: store.NewLikesStore(local, mirrorClient),
		}
		sess.likes.SetIdentity(ctx, identity)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		// drain fire-and-forget mirror calls before the process exits
		sess.cart.Flush(2 * time.Second)
		sess.likes.Flush(2 * time.Second)
	},
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "List the salad catalog",
	Run: func(cmd *cobra.Command, args []string) {
		for _, p := range catalog.Products() {
			liked := " "
			if sess.likes.IsLiked(p.ID) {
				liked = "*"
			}
			fmt.Printf("%s [%s] %-24s ₹%.0f", liked, p.ID, p.Name, p.Price)
			if p.Badge != "" {
				fmt.Printf("  (%s)", p.Badge)
			}
			fmt.Println()
		}
	},
}

var addCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Add one unit of a product to the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, ok := catalog.Lookup(catalog.NormalizeID(args[0]))
		if !ok {
			return fmt.Errorf("unknown product %q", args[0])
		}
		sess.cart.Add(cmd.Context(), p)
		fmt.Printf("added %s, total ₹%.2f\n", p.Name, sess.cart.Total())
		return nil
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove <product-id>",
	Short: "Remove a product's line item from the cart",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sess.cart.Remove(cmd.Context(), catalog.NormalizeID(args[0]))
		fmt.Printf("total ₹%.2f\n", sess.cart.Total())
	},
}

var quantityCmd = &cobra.Command{
	Use:   "quantity <product-id> <n>",
	Short: "Set a line item's quantity (0 removes it)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 0 {
			return fmt.Errorf("quantity must be a non-negative integer")
		}
		sess.cart.SetQuantity(cmd.Context(), catalog.NormalizeID(args[0]), n)
		fmt.Printf("total ₹%.2f\n", sess.cart.Total())
		return nil
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	Run: func(cmd *cobra.Command, args []string) {
		sess.cart.Clear(cmd.Context())
		fmt.Println("cart cleared")
	},
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the cart",
	Run: func(cmd *cobra.Command, args []string) {
		items := sess.cart.Items()
		if len(items) == 0 {
			fmt.Println("cart is empty")
			return
		}
		for _, item := range items {
			fmt.Printf("[%s] %-24s x%d  ₹%.2f\n", item.ID, item.Name, item.Quantity, item.Subtotal())
		}
		fmt.Printf("%d items, total ₹%.2f\n", sess.cart.Count(), sess.cart.Total())
	},
}

var likeCmd = &cobra.Command{
	Use:   "like <product-id>",
	Short: "Toggle a product in the likes list",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := catalog.NormalizeID(args[0])
		if sess.likes.Toggle(cmd.Context(), id) {
			fmt.Printf("liked %s\n", id)
		} else {
			fmt.Printf("unliked %s\n", id)
		}
	},
}

var likesCmd = &cobra.Command{
	Use:   "likes",
	Short: "List liked products",
	Run: func(cmd *cobra.Command, args []string) {
		for _, id := range sess.likes.All() {
			if p, ok := catalog.Lookup(id); ok {
				fmt.Printf("[%s] %s\n", p.ID, p.Name)
			} else {
				fmt.Printf("[%s]\n", id)
			}
		}
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary <path>",
	Short: "Report whether the floating cart summary renders on a route",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		detailOpen, _ := cmd.Flags().GetBool("detail-open")
		hidden, _ := cmd.Flags().GetBool("hidden")
		show := policy.ShouldShowCartSummary(args[0], sess.cart.Count(), policy.OverlayFlags{
			DetailOpen:  detailOpen,
			ForceHidden: hidden,
		})
		fmt.Println(show)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&userFlag, "user", "", "identity that scopes the likes list")
	rootCmd.PersistentFlags().BoolVar(&offlineFlag, "offline", false, "skip remote mirroring")
	summaryCmd.Flags().Bool("detail-open", false, "a detail overlay is open")
	summaryCmd.Flags().Bool("hidden", false, "summary is forcibly hidden")

	rootCmd.AddCommand(
		menuCmd,
		addCmd,
		removeCmd,
		quantityCmd,
		clearCmd,
		showCmd,
		likeCmd,
		likesCmd,
		summaryCmd,
	)
}
