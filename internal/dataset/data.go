package dataset

import "github.com/sjbeckles/fiscboard/internal/model"

// New constructs the full dataset for the 2022-2023 financial year.
func New() *Dataset {
	return &Dataset{
		FiscalYear:    "April 1, 2022 - March 31, 2023",
		StatementDate: "March 31, 2023",
		CurrentYear:   "2023",
		PriorYear:     "2022",

		Revenue: []model.LineItem{
			flow("Taxation", "2977381493", "3209934907", "2587338338"),
			flow("Goods and Services", "1463856504", "1628078161", "1257284226"),
			flow("Income and Profits", "1024520055", "1068849288", "861692875"),
			flow("Property Taxes", "227384934", "240517833", "223959932"),
			flow("International Trade", "241200000", "250253724", "231008360"),
			flow("Other Taxes", "20420000", "22235902", "13392945"),
			flow("Levies, Fees and Fines", "69614799", "83376897", "-39531402"),
			flow("Special Receipts", "2312561", "1905632", "-90224420"),
			flow("Other Revenue", "164208584", "170882782", "153071264"),
			flow("Grants", "25700000", "20000000", "0"),
		},

		Expenditure: []model.LineItem{
			flow("Payroll and Employee Benefits", "915064501", "863924381", "828005895"),
			flow("Goods and Services", "655380977", "545212668", "653615712"),
			flow("Depreciation", "54000000", "49626566", "43277406"),
			flow("Bad Debt Expense", "989555", "68281611", "9880606"),
			flow("Retiring Benefits and Allowances", "387655291", "333644842", "340245554"),
			flow("Grants and Other Current Transfers", "675353637", "910661649", "831432691"),
			flow("Other Statutory Expenditure", "1970000", "4554557", "7489232"),
			flow("Capital Transfers", "281518344", "241950953", "268894435"),
			flow("Debt Service", "691711905", "568277615", "391453035"),
		},

		CurrentAssets: model.BalanceSection{
			Name:  "Current Assets",
			Total: stock("Current Assets", "3735288225", "3476483879"),
			Items: []model.LineItem{
				stock("Financial Assets", "3734618402", "3475932368"),
				stock("Cash on Hand", "152830846", "101071094"),
				stock("Bank", "759489160", "620329896"),
				stock("Tax Receivables (Net)", "2428696065", "2384625679"),
				stock("Other Receivables (Net)", "254774883", "231248217"),
				stock("Restricted Cash", "138827448", "138657482"),
			},
		},

		NonCurrentAssets: model.BalanceSection{
			Name:  "Non-Current Assets",
			Total: stock("Non-Current Assets", "4337385833", "4077323452"),
			Items: []model.LineItem{
				stock("Financial Assets", "609280459", "439248332"),
				stock("Sinking Fund Assets", "60998391", "30094107"),
				stock("Investments", "529021234", "381209361"),
				stock("Non Financial Assets", "3728105374", "3638075120"),
				stock("Land", "1445313783", "1443906209"),
				stock("Other Capital Assets (Net)", "2282791591", "2194168911"),
			},
		},

		CurrentLiabilities: model.BalanceSection{
			Name:  "Current Liabilities",
			Total: stock("Current Liabilities", "2131488223", "1877339098"),
			Items: []model.LineItem{
				stock("Overdraft Facility", "167110481", "214985000"),
				stock("Accounts Payable", "82010933", "33894156"),
				stock("Refunds Payable", "530063724", "522864905"),
				stock("Pension Liability", "5573965", "5382182"),
				stock("Deposits", "170086214", "163215273"),
				stock("Treasury Bills", "495103750", "495103750"),
				stock("Current Portion of Long-term Debt", "661885235", "408361016"),
			},
		},

		LongTermLiabilities: model.BalanceSection{
			Name:  "Long-term Liabilities",
			Total: stock("Long-term Liabilities", "12799271087", "12306018215"),
			Items: []model.LineItem{
				stock("Government Securities", "8572467834", "8781379378"),
				stock("Other Local Debt", "101315000", "101315000"),
				stock("Loans from International Financial Institutions", "3194580072", "2795720352"),
				stock("Loans from Other Governments", "376309795", "312635489"),
				stock("Other Foreign Debt", "416416319", "178010652"),
			},
		},

		TaxDetail: []model.LineItem{
			stock("Income and Profits - Individuals", "545610497", "429779367"),
			stock("Income and Profits - Corporation", "485674857", "394168620"),
			stock("Withholding Tax", "37563935", "37744944"),
			stock("VAT (Net)", "1156630063", "874397904"),
			stock("Excise Duty", "251622393", "204941594"),
			stock("Highway Revenue", "16612103", "15628435"),
			stock("Other Goods & Services", "203213603", "162416302"),
			stock("Land Tax (Net)", "211157762", "203072475"),
			stock("Property Transfer Tax", "29360071", "20887457"),
			stock("Import Duties (Net)", "250253724", "231002875"),
			stock("Stamp Duty", "22235902", "13392945"),
		},

		DebtStructure: []model.LineItem{
			stock("Local Loans Act", "7745270000", "7871410000"),
			stock("External Loans Act", "1061170000", "1061170000"),
			stock("Caribbean Development Bank", "483540000", "469380000"),
			stock("Inter American Development Bank", "1814760000", "1499660000"),
			stock("Special Loans Act", "890940000", "810080000"),
			stock("Treasury Bills", "495100000", "495100000"),
			stock("Savings Bond Act", "32230000", "47290000"),
			stock("International Monetary Fund", "548410000", "464770000"),
			stock("Latin American Development Bank", "357430000", "340600000"),
			stock("Ways & Means (Overdraft)", "167150000", "214990000"),
		},

		DebtService: []model.LineItem{
			stock("Interest Expense - Domestic", "372283237", "258748956"),
			stock("Interest Expense - Foreign", "182429845", "125213222"),
			stock("Total Interest", "554713083", "383962718"),
			stock("Expenses of Loans", "13564532", "7490317"),
			stock("Total Debt Service", "568277615", "391453035"),
		},

		SOETransfers: []model.TransferRow{
			transfer("Queen Elizabeth Hospital", "133664857.68", "8800000.00"),
			transfer("Barbados Defence Force", "69932639.00", "1547900.00"),
			transfer("Transport Board", "46023613.00", "750000.00"),
			transfer("National Housing Corporation", "16851610.11", "29450000.00"),
			transfer("Barbados Agricultural Management", "38984952.00", "5000000.00"),
			transfer("Sanitation Service Authority", "4452630.00", "6000000.00"),
			transfer("Barbados Tourism Investment", "3516575.00", "91200000.00"),
			transfer("National Sports Council", "16443141.43", "19919939.00"),
			transfer("Barbados Investment and Development Corp", "9852282.00", "8387000.00"),
			transfer("Urban Development Commission", "5370098.22", "10716031.00"),
		},

		Findings: []model.Finding{
			{
				Issue:       "Other Capital Assets Discrepancy",
				Amount:      model.Quantified(bbd("719000000")),
				Description: "Difference of $719 million between amounts reported vs subsidiary records",
				Impact:      "Overstated Assets",
				Severity:    model.SeverityHigh,
			},
			{
				Issue:       "Cash Overstatement",
				Amount:      model.Quantified(bbd("115000000")),
				Description: "Cash overstated by $115 million",
				Impact:      "Overstated Current Assets",
				Severity:    model.SeverityHigh,
			},
			{
				Issue:       "Financial Investments Overstatement",
				Amount:      model.Quantified(bbd("147000000")),
				Description: "Financial investments overstated by $147 million",
				Impact:      "Overstated Investments",
				Severity:    model.SeverityHigh,
			},
			{
				Issue:       "Pension Liabilities Omitted",
				Amount:      model.Unquantified("Not Quantified"),
				Description: "Pension and employee benefits liability not included",
				Impact:      "Understated Liabilities",
				Severity:    model.SeverityCritical,
			},
			{
				Issue:       "Tax Receivables Unverified",
				Amount:      model.Quantified(bbd("2430000000")),
				Description: "$2.43 billion tax receivables could not be confirmed",
				Impact:      "Overstated Receivables",
				Severity:    model.SeverityCritical,
			},
			{
				Issue:       "Bad Debt Expenses Unverified",
				Amount:      model.Quantified(bbd("68280000")),
				Description: "$68.28 million bad debt expenses could not be confirmed",
				Impact:      "Potential Overstated Expenses",
				Severity:    model.SeverityMedium,
			},
			{
				Issue:       "Non-Consolidation of SOEs",
				Amount:      model.Unquantified("Not Quantified"),
				Description: "State-owned entities not consolidated as required by IPSAS",
				Impact:      "Incomplete Financial Statements",
				Severity:    model.SeverityCritical,
			},
		},

		Compliance: []model.ComplianceIssue{
			{
				Requirement: "Consolidation of State-Owned Entities",
				Status:      model.NotCompliant,
				Impact:      "Financial statements incomplete and misleading",
				Remediation: "Require full consolidation of all SOEs",
			},
			{
				Requirement: "Recognition of Pension Liabilities",
				Status:      model.NotCompliant,
				Impact:      "Liabilities understated by unquantified amount",
				Remediation: "Actuarial valuation and proper accounting",
			},
			{
				Requirement: "Asset Valuation and Verification",
				Status:      model.PartiallyCompliant,
				Impact:      "Assets potentially overstated by $981M+",
				Remediation: "Complete asset register reconciliation",
			},
			{
				Requirement: "Revenue Recognition (Tax Receivables)",
				Status:      model.NotCompliant,
				Impact:      "$2.43B receivables unverified",
				Remediation: "Documentation and verification procedures",
			},
		},

		OpinionBasis: "The total for Other Capital Assets could not be confirmed because " +
			"of a difference of $719 million between the amounts reported in the financial " +
			"statements compared with the corresponding figures listed in the subsidiary " +
			"records. Cash and Financial Investments listed in the financial statements were " +
			"overstated by $115 million and $147 million respectively. In addition, the " +
			"liability for pensions and employee benefits were not included in the Statement " +
			"of Financial Position and the accounts of the State-owned Entities were not " +
			"consolidated into the financial statements as required by the International " +
			"Public Sector Accounting Standards (IPSAS). Also, Tax Receivables of $2.43 " +
			"billion and Bad Debt Expenses of $68.28 million could not be confirmed because " +
			"of the absence of sufficient supporting documentation.",
	}
}

func transfer(entity, current, capital string) model.TransferRow {
	return model.TransferRow{
		Entity:          entity,
		CurrentTransfer: bbd(current),
		CapitalTransfer: bbd(capital),
	}
}
