package docx

import "fmt"

// Static package parts emitted for documents created with New. Template
// documents carry their own versions of these and never use them.

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

const wordprocessingNS = `xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" ` +
	`xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"`

const contentTypesXML = xmlHeader +
	`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
	`<Override PartName="/word/numbering.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"/>` +
	`</Types>`

const packageRelsXML = xmlHeader +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`

// stylesXML defines the styles the conversion engine targets: headings 1-6,
// the quote style, and three levels each of bullet and numbered list
// styles. Ids match Word's stock style ids so templates can override them.
var stylesXML = xmlHeader +
	`<w:styles ` + wordprocessingNS + `>` +
	`<w:docDefaults><w:rPrDefault><w:rPr>` +
	`<w:rFonts w:ascii="Calibri" w:hAnsi="Calibri"/><w:sz w:val="22"/>` +
	`</w:rPr></w:rPrDefault></w:docDefaults>` +
	`<w:style w:type="paragraph" w:styleId="Normal" w:default="1"><w:name w:val="Normal"/></w:style>` +
	headingStyleXML(1, 32) +
	headingStyleXML(2, 28) +
	headingStyleXML(3, 26) +
	headingStyleXML(4, 24) +
	headingStyleXML(5, 22) +
	headingStyleXML(6, 22) +
	`<w:style w:type="paragraph" w:styleId="Quote"><w:name w:val="Quote"/><w:basedOn w:val="Normal"/>` +
	`<w:pPr><w:ind w:left="720" w:right="720"/></w:pPr><w:rPr><w:i/><w:color w:val="404040"/></w:rPr></w:style>` +
	listStyleXML("ListBullet", "List Bullet", 1, 0) +
	listStyleXML("ListBullet2", "List Bullet 2", 1, 1) +
	listStyleXML("ListBullet3", "List Bullet 3", 1, 2) +
	listStyleXML("ListNumber", "List Number", 2, 0) +
	listStyleXML("ListNumber2", "List Number 2", 2, 1) +
	listStyleXML("ListNumber3", "List Number 3", 2, 2) +
	`<w:style w:type="table" w:styleId="TableGrid"><w:name w:val="Table Grid"/>` +
	`<w:tblPr><w:tblBorders>` +
	`<w:top w:val="single" w:sz="4" w:color="auto"/>` +
	`<w:left w:val="single" w:sz="4" w:color="auto"/>` +
	`<w:bottom w:val="single" w:sz="4" w:color="auto"/>` +
	`<w:right w:val="single" w:sz="4" w:color="auto"/>` +
	`<w:insideH w:val="single" w:sz="4" w:color="auto"/>` +
	`<w:insideV w:val="single" w:sz="4" w:color="auto"/>` +
	`</w:tblBorders></w:tblPr></w:style>` +
	`</w:styles>`

// numberingXML backs the list styles: abstract numbering 0 is a three-level
// bullet scheme, abstract numbering 1 a three-level decimal scheme.
var numberingXML = xmlHeader +
	`<w:numbering ` + wordprocessingNS + `>` +
	`<w:abstractNum w:abstractNumId="0">` +
	bulletLevelXML(0) + bulletLevelXML(1) + bulletLevelXML(2) +
	`</w:abstractNum>` +
	`<w:abstractNum w:abstractNumId="1">` +
	decimalLevelXML(0) + decimalLevelXML(1) + decimalLevelXML(2) +
	`</w:abstractNum>` +
	`<w:num w:numId="1"><w:abstractNumId w:val="0"/></w:num>` +
	`<w:num w:numId="2"><w:abstractNumId w:val="1"/></w:num>` +
	`</w:numbering>`

func headingStyleXML(level, halfPoints int) string {
	return fmt.Sprintf(
		`<w:style w:type="paragraph" w:styleId="Heading%d"><w:name w:val="heading %d"/><w:basedOn w:val="Normal"/>`+
			`<w:pPr><w:outlineLvl w:val="%d"/></w:pPr>`+
			`<w:rPr><w:b/><w:sz w:val="%d"/></w:rPr></w:style>`,
		level, level, level-1, halfPoints)
}

func listStyleXML(id, name string, numID, ilvl int) string {
	return fmt.Sprintf(
		`<w:style w:type="paragraph" w:styleId="%s"><w:name w:val="%s"/><w:basedOn w:val="Normal"/>`+
			`<w:pPr><w:numPr><w:ilvl w:val="%d"/><w:numId w:val="%d"/></w:numPr></w:pPr></w:style>`,
		id, name, ilvl, numID)
}

func bulletLevelXML(ilvl int) string {
	return fmt.Sprintf(
		`<w:lvl w:ilvl="%d"><w:numFmt w:val="bullet"/><w:lvlText w:val="%s"/>`+
			`<w:pPr><w:ind w:left="%d" w:hanging="360"/></w:pPr>`+
			`<w:rPr><w:rFonts w:ascii="Symbol" w:hAnsi="Symbol"/></w:rPr></w:lvl>`,
		ilvl, "\uF0B7", 720*(ilvl+1))
}

func decimalLevelXML(ilvl int) string {
	return fmt.Sprintf(
		`<w:lvl w:ilvl="%d"><w:start w:val="1"/><w:numFmt w:val="decimal"/><w:lvlText w:val="%%%d."/>`+
			`<w:pPr><w:ind w:left="%d" w:hanging="360"/></w:pPr></w:lvl>`,
		ilvl, ilvl+1, 720*(ilvl+1))
}
