package fontlink

import "github.com/Fitzgerald-Porthmouth-Koenigsegg/Planschrift-Project/internal/winreg"

// DefaultConfig returns the Planschrift insertion policy: both SystemLink
// key flavors, the system font set shipped with East Asian Windows
// installs, and the two Planschrift face entries appended to each of them.
func DefaultConfig() Config {
	targets := []string{
		"Arial",
		"Batang",
		"BatangChe",
		"Dotum",
		"DotumChe",
		"Gulim",
		"GulimChe",
		"Gungsuh",
		"GungsuhChe",
		"Lucida Sans Unicode",
		"Malgun Gothic Bold",
		"Malgun Gothic",
		"Meiryo Bold",
		"Meiryo UI Bold",
		"Meiryo UI",
		"Meiryo",
		"Microsoft JhengHei Bold",
		"Microsoft JhengHei UI Bold",
		"Microsoft JhengHei UI Light",
		"Microsoft JhengHei UI",
		"Microsoft JhengHei",
		"Microsoft Sans Serif",
		"Microsoft YaHei Bold",
		"Microsoft YaHei UI Bold",
		"Microsoft YaHei UI",
		"Microsoft YaHei",
		"MingLiU",
		"MingLiU_HKSCS",
		"MingLiU_HKSCS-ExtB",
		"MingLiU-ExtB",
		"MS Gothic",
		"MS Mincho",
		"MS PGothic",
		"MS PMincho",
		"MS UI Gothic",
		"NSimSun",
		"PMingLiU",
		"PMingLiU-ExtB",
		"Segoe UI Semibold",
		"Segoe UI Semilight",
		"Segoe UI Bold",
		"Segoe UI Light",
		"Segoe UI",
		"SimSun",
		"SimSun-ExtB",
		"SimSun-ExtG",
		"SimSun-PUA",
		"Tahoma",
		"Times New Roman",
		"微軟正黑體",
		"微軟正黑體 Bold",
		"微软雅黑",
		"微软雅黑 Bold",
	}

	appendTo := make(map[string]bool, len(targets))
	for _, name := range targets {
		appendTo[name] = true
	}

	return Config{
		Root: winreg.LocalMachine,
		Paths: []ArchPath{
			{Arch: "64bit", Path: `SOFTWARE\Microsoft\Windows NT\CurrentVersion\FontLink\SystemLink`},
			{Arch: "32bit", Path: `SOFTWARE\WOW6432Node\Microsoft\Windows NT\CurrentVersion\FontLink\SystemLink`},
		},
		Targets:  targets,
		AppendTo: appendTo,
		Entries: []string{
			"PlanschriftP1-Regular.ttf,Planschrift P1",
			"PlanschriftP2-Regular.ttf,Planschrift P2",
		},
	}
}
