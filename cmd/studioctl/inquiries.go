package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/familysoo/studio-web/internal/domain/inquiry"
	"github.com/familysoo/studio-web/internal/pkg/database"
)

var (
	inquiryLimit  int
	inquiryOffset int
)

var errNoDatabase = errors.New("DATABASE_URL is not set; inquiries are only logged")

var inquiriesCmd = &cobra.Command{
	Use:   "inquiries",
	Short: "Read stored contact-form inquiries",
}

var inquiriesListCmd = &cobra.Command{
	Use:     "list",
	Short:   "Print the newest inquiries as JSON",
	Example: `  studioctl inquiries list --limit 20`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withInquiries(cmd.Context(), func(svc *inquiry.Service) error {
			return listInquiries(cmd.Context(), cmd.OutOrStdout(), svc, inquiryLimit, inquiryOffset)
		})
	},
}

var inquiriesShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print one inquiry as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid inquiry id %q: %w", args[0], err)
		}
		return withInquiries(cmd.Context(), func(svc *inquiry.Service) error {
			return showInquiry(cmd.Context(), cmd.OutOrStdout(), svc, id)
		})
	},
}

func init() {
	inquiriesListCmd.Flags().IntVar(&inquiryLimit, "limit", 50, "Maximum number of inquiries (1-100)")
	inquiriesListCmd.Flags().IntVar(&inquiryOffset, "offset", 0, "Number of inquiries to skip")

	inquiriesCmd.AddCommand(inquiriesListCmd)
	inquiriesCmd.AddCommand(inquiriesShowCmd)
}

func withInquiries(ctx context.Context, fn func(*inquiry.Service) error) error {
	db, err := database.NewPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	if db == nil {
		return errNoDatabase
	}
	defer database.ClosePostgres(db)

	return fn(inquiry.NewService(inquiry.NewRepository(db)))
}

type inquiryPage struct {
	Items  []*inquiry.InquiryResponse `json:"items"`
	Total  int                        `json:"total"`
	Limit  int                        `json:"limit"`
	Offset int                        `json:"offset"`
}

func listInquiries(ctx context.Context, w io.Writer, svc *inquiry.Service, limit, offset int) error {
	items, total, err := svc.List(ctx, limit, offset)
	if err != nil {
		return fmt.Errorf("list inquiries: %w", err)
	}

	page := inquiryPage{
		Items:  make([]*inquiry.InquiryResponse, 0, len(items)),
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}
	for _, i := range items {
		page.Items = append(page.Items, inquiry.ToResponse(i))
	}
	return printJSON(w, page)
}

func showInquiry(ctx context.Context, w io.Writer, svc *inquiry.Service, id uuid.UUID) error {
	i, err := svc.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return printJSON(w, inquiry.ToResponse(i))
}
